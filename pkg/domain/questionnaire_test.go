package domain

import (
	"strings"
	"testing"
)

func aliasQuestionnaire() *Questionnaire {
	return &Questionnaire{
		ID:    "intake",
		Title: "Intake",
		Questions: []*Question{
			{
				ID:      "have_alias",
				Kind:    QuestionBoolean,
				Text:    "Do you have an alias?",
				Options: BooleanOptions(),
			},
			{
				ID:         "alias",
				Kind:       QuestionText,
				Text:       "What is your alias?",
				Visibility: NewValueCheck("have_alias", "Do you have an alias?", true),
			},
		},
	}
}

// Scenario: a boolean question gates a text question.
func TestBooleanGatedText(t *testing.T) {
	q := aliasQuestionnaire()

	tests := []struct {
		name      string
		responses Responses
		wantIDs   []string
	}{
		{"gate open", Responses{"have_alias": true}, []string{"have_alias", "alias"}},
		{"gate closed", Responses{"have_alias": false}, []string{"have_alias"}},
		{"unanswered gate", Responses{}, []string{"have_alias"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := q.VisibleQuestions(tt.responses)
			if len(visible) != len(tt.wantIDs) {
				t.Fatalf("VisibleQuestions() returned %d questions, want %d", len(visible), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if visible[i].ID != id {
					t.Errorf("VisibleQuestions()[%d].ID = %q, want %q", i, visible[i].ID, id)
				}
			}
		})
	}
}

// Scenario: a dropdown gated by the conjunction of two prior answers.
func TestAndGatedDropdown(t *testing.T) {
	state := &Question{
		ID:   "state",
		Kind: QuestionDropdown,
		Text: "Which state?",
		Options: []Option{
			{Label: "California", Value: "CA", ShowValue: true},
		},
		Visibility: NewAnd(
			NewValueCheck("live_in_us", "Do you live in the US?", true),
			NewValueCheck("which_situation", "Which situation?", "dv"),
		),
	}

	if !state.IsVisible(Responses{"live_in_us": true, "which_situation": "dv"}) {
		t.Error("state should be visible when both conditions hold")
	}
	if state.IsVisible(Responses{"live_in_us": true, "which_situation": "sa"}) {
		t.Error("state should be hidden when one condition fails")
	}
}

// Scenario: two dropdowns with mutually exclusive visibility; exactly one
// appears for any answer to the gate.
func TestMutuallyExclusiveVisibility(t *testing.T) {
	q := &Questionnaire{
		ID:    "location",
		Title: "Location",
		Questions: []*Question{
			{
				ID:         "state",
				Kind:       QuestionDropdown,
				Text:       "Which state?",
				Visibility: NewValueCheck("live_in_us", "Do you live in the US?", true),
			},
			{
				ID:         "country",
				Kind:       QuestionDropdown,
				Text:       "Which country?",
				Visibility: NewValueCheck("live_in_us", "Do you live in the US?", false),
			},
		},
	}

	for _, answer := range []bool{true, false} {
		visible := q.VisibleQuestions(Responses{"live_in_us": answer})
		if len(visible) != 1 {
			t.Fatalf("live_in_us=%v: %d questions visible, want exactly 1", answer, len(visible))
		}
		wantID := "country"
		if answer {
			wantID = "state"
		}
		if visible[0].ID != wantID {
			t.Errorf("live_in_us=%v: visible question = %q, want %q", answer, visible[0].ID, wantID)
		}
	}
}

func TestVisibleQuestionsPreservesOrder(t *testing.T) {
	q := &Questionnaire{
		ID:    "order",
		Title: "Order",
		Questions: []*Question{
			{ID: "q1", Kind: QuestionText, Text: "1?"},
			{ID: "q2", Kind: QuestionText, Text: "2?", Visibility: NewValueCheck("q1", "", "never")},
			{ID: "q3", Kind: QuestionText, Text: "3?"},
			{ID: "q4", Kind: QuestionText, Text: "4?"},
		},
	}

	visible := q.VisibleQuestions(Responses{})
	want := []string{"q1", "q3", "q4"}
	if len(visible) != len(want) {
		t.Fatalf("got %d visible questions, want %d", len(visible), len(want))
	}
	for i, id := range want {
		if visible[i].ID != id {
			t.Errorf("visible[%d].ID = %q, want %q", i, visible[i].ID, id)
		}
	}
}

// Invisible questions never consume a display number: q3 takes number 2.
func TestRenderNumbersOnlyVisibleQuestions(t *testing.T) {
	q := &Questionnaire{
		ID:    "numbering",
		Title: "Numbering",
		Questions: []*Question{
			{ID: "q1", Kind: QuestionText, Text: "First?"},
			{ID: "q2", Kind: QuestionText, Text: "Hidden?", Visibility: NewValueCheck("q1", "", "never")},
			{ID: "q3", Kind: QuestionText, Text: "Second?"},
		},
	}

	out := q.Render(Responses{})
	if !strings.Contains(out, "1. First? (text question)") {
		t.Errorf("missing numbered first question:\n%s", out)
	}
	if !strings.Contains(out, "2. Second? (text question)") {
		t.Errorf("q3 should take display number 2:\n%s", out)
	}
	if strings.Contains(out, "Hidden?") {
		t.Errorf("hidden question rendered:\n%s", out)
	}
}

func TestQuestionnaireRenderFull(t *testing.T) {
	q := aliasQuestionnaire()
	q.Questions[1].MinLength = intPtr(2)
	q.Questions[1].MaxLength = intPtr(30)

	got := q.Render(Responses{"have_alias": true, "alias": "JD"})
	want := "Intake\n" +
		"======\n" +
		"\n" +
		"1. Do you have an alias? (boolean question)\n" +
		"  [x] Yes\n" +
		"  [ ] No\n" +
		"\n" +
		"2. What is your alias? (text question)\n" +
		"  You can enter at least 2 and at most 30 characters.\n" +
		"  Visible when: Do you have an alias?: true\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	// Identical inputs must yield identical output.
	if again := q.Render(Responses{"have_alias": true, "alias": "JD"}); again != got {
		t.Error("Render() not deterministic")
	}
}

func TestQuestionLookup(t *testing.T) {
	q := aliasQuestionnaire()
	if got := q.Question("alias"); got == nil || got.ID != "alias" {
		t.Errorf("Question(alias) = %v", got)
	}
	if got := q.Question("missing"); got != nil {
		t.Errorf("Question(missing) = %v, want nil", got)
	}
}
