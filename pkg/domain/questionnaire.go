package domain

import (
	"fmt"
	"strings"
)

// Questionnaire is a titled, ordered collection of questions sharing one id
// namespace. Question order is declaration order and determines both display
// order and numbering.
type Questionnaire struct {
	ID        string      `json:"id" yaml:"id"`
	Title     string      `json:"title" yaml:"title"`
	Questions []*Question `json:"questions" yaml:"questions"`
}

// VisibleQuestions filters the owned questions by visibility against the
// snapshot, preserving declaration order.
func (q *Questionnaire) VisibleQuestions(responses Responses) []*Question {
	visible := make([]*Question, 0, len(q.Questions))
	for _, question := range q.Questions {
		if question.IsVisible(responses) {
			visible = append(visible, question)
		}
	}
	return visible
}

// Question returns the question with the given id, or nil.
func (q *Questionnaire) Question(id string) *Question {
	for _, question := range q.Questions {
		if question.ID == id {
			return question
		}
	}
	return nil
}

// Render produces the plain-text form of the questionnaire for the snapshot:
// a title header followed by the visible questions' blocks, numbered
// sequentially. Invisible questions never consume a number. Color and other
// formatting is applied by decorators around this output, never here.
func (q *Questionnaire) Render(responses Responses) string {
	var b strings.Builder
	b.WriteString(q.Title + "\n")
	b.WriteString(strings.Repeat("=", len(q.Title)) + "\n")

	for i, question := range q.VisibleQuestions(responses) {
		b.WriteString("\n")
		block := question.Render(responses)
		fmt.Fprintf(&b, "%d. %s", i+1, block)
	}
	return b.String()
}
