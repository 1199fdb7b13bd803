package quire_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intakeYAML = `
id: intake
title: Intake
questions:
  - id: have_alias
    type: boolean
    text: Do you have an alias?
  - id: alias
    type: text
    text: What is your alias?
    min_length: 2
    max_length: 30
    visibility:
      type: value_check
      question_id: have_alias
      question_text: Do you have an alias?
      expected_value: true
  - id: live_in_us
    type: boolean
    text: Do you live in the US?
  - id: state
    type: dropdown
    text: Which state do you live in?
    preset: state
    visibility:
      type: value_check
      question_id: live_in_us
      question_text: Do you live in the US?
      expected_value: true
  - id: country
    type: dropdown
    text: Which country do you live in?
    preset: country
    visibility:
      type: value_check
      question_id: live_in_us
      question_text: Do you live in the US?
      expected_value: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAndRender(t *testing.T) {
	q, err := quire.Load(writeConfig(t, intakeYAML))
	require.NoError(t, err)

	assert.Equal(t, "intake", q.ID)
	require.Len(t, q.Questions, 5)

	t.Run("gate open shows alias", func(t *testing.T) {
		visible := q.VisibleQuestions(domain.Responses{"have_alias": true})
		ids := []string{}
		for _, question := range visible {
			ids = append(ids, question.ID)
		}
		assert.Equal(t, []string{"have_alias", "alias", "live_in_us"}, ids)
	})

	t.Run("exactly one of state and country appears", func(t *testing.T) {
		for _, answer := range []bool{true, false} {
			visible := q.VisibleQuestions(domain.Responses{"live_in_us": answer})
			count := 0
			for _, question := range visible {
				if question.ID == "state" || question.ID == "country" {
					count++
				}
			}
			assert.Equal(t, 1, count, "live_in_us=%v", answer)
		}
	})

	t.Run("rendered output", func(t *testing.T) {
		out := q.Render(domain.Responses{"have_alias": true, "live_in_us": true})
		assert.Contains(t, out, "Intake\n======\n")
		assert.Contains(t, out, "1. Do you have an alias? (boolean question)")
		assert.Contains(t, out, "2. What is your alias? (text question)")
		assert.Contains(t, out, "  [x] Yes")
		assert.Contains(t, out, "California (value: 'CA')")
		assert.Contains(t, out, "Visible when: Do you live in the US?: true")
		assert.NotContains(t, out, "Which country")
	})
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	path := writeConfig(t, "id: broken\nquestions: nope\n")

	q, err := quire.Load(path)
	assert.Nil(t, q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid questionnaire config")
}

func TestLoadStrictPresets(t *testing.T) {
	content := `
id: presets
title: Presets
questions:
  - id: q1
    type: radio
    text: Pick one
    preset: planets
`
	path := writeConfig(t, content)

	t.Run("default tolerates unknown preset", func(t *testing.T) {
		q, err := quire.Load(path)
		require.NoError(t, err)
		assert.Empty(t, q.Questions[0].Options)
	})

	t.Run("strict mode fails", func(t *testing.T) {
		_, err := quire.Load(path, quire.WithStrictPresets())
		require.ErrorIs(t, err, domain.ErrUnknownPreset)
	})
}
