package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/quire/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// Renderer decorates the engine's plain-text output with terminal colors.
// The core rendering semantics live in pkg/domain; this layer only styles.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer using the given style set.
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// RenderQuestionnaire produces the colorized form of the questionnaire:
// styled title, styled sequential numbers on the visible subset, and dimmed
// constraint/visibility annotations. Line content matches the plain output.
func (r *Renderer) RenderQuestionnaire(q *domain.Questionnaire, responses domain.Responses) string {
	var b strings.Builder
	b.WriteString(r.styles.Title(q.Title) + "\n")
	b.WriteString(strings.Repeat("=", len(q.Title)) + "\n")

	for i, question := range q.VisibleQuestions(responses) {
		b.WriteString("\n")
		block := strings.TrimSuffix(question.Render(responses), "\n")
		for j, line := range strings.Split(block, "\n") {
			switch {
			case j == 0:
				fmt.Fprintf(&b, "%s %s\n", r.styles.Number(fmt.Sprintf("%d.", i+1)), line)
			case strings.HasPrefix(strings.TrimSpace(line), "Visible when"):
				b.WriteString(r.styles.Hint(line) + "\n")
			default:
				b.WriteString(line + "\n")
			}
		}
	}
	return b.String()
}

// NewContentRenderer returns a function that renders markdown question
// prompts using glamour. Used by the interactive session when markdown
// prompts are enabled.
func NewContentRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
