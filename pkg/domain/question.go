package domain

import (
	"fmt"
	"strings"
)

// QuestionKind discriminates the question variants.
const (
	QuestionText     = "text"
	QuestionBoolean  = "boolean"
	QuestionRadio    = "radio"
	QuestionCheckbox = "checkbox"
	QuestionDropdown = "dropdown"
)

// typeLabels are the fixed per-kind labels appended to the prompt line.
var typeLabels = map[string]string{
	QuestionText:     "text question",
	QuestionBoolean:  "boolean question",
	QuestionRadio:    "radio question",
	QuestionCheckbox: "checkbox question",
	QuestionDropdown: "dropdown question",
}

// Question is a single prompt of one of five kinds, optionally gated by a
// visibility condition it exclusively owns. Built once by the builder and
// immutable afterward.
type Question struct {
	ID   string `json:"id" yaml:"id"`
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`

	// Visibility gates the question against prior answers. Nil means always visible.
	Visibility *Condition `json:"visibility,omitempty" yaml:"visibility,omitempty"`

	// Text configuration.
	MinLength *int `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength *int `json:"max_length,omitempty" yaml:"max_length,omitempty"`

	// Radio/Checkbox/Dropdown configuration. Boolean questions carry the
	// fixed Yes/No pair here so all kinds share one option renderer.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// Checkbox configuration.
	AllowOther bool `json:"allow_other,omitempty" yaml:"allow_other,omitempty"`
	AllowNone  bool `json:"allow_none,omitempty" yaml:"allow_none,omitempty"`
}

// BooleanOptions returns the fixed Yes/No pair every boolean question carries.
func BooleanOptions() []Option {
	return []Option{
		{Label: "Yes", Value: true},
		{Label: "No", Value: false},
	}
}

// TypeLabel returns the fixed display label for the question kind.
func (q *Question) TypeLabel() string {
	return typeLabels[q.Kind]
}

// IsVisible reports whether the question should be shown for the snapshot.
// Questions without a visibility condition are always visible.
func (q *Question) IsVisible(responses Responses) bool {
	if q.Visibility == nil {
		return true
	}
	return q.Visibility.Evaluate(responses)
}

// EffectiveOptions returns the options as rendered and prompted: declared
// options plus the synthetic Other / None of the above entries for checkbox.
func (q *Question) EffectiveOptions() []Option {
	if q.Kind != QuestionCheckbox {
		return q.Options
	}
	options := make([]Option, len(q.Options), len(q.Options)+2)
	copy(options, q.Options)
	if q.AllowOther {
		options = append(options, Option{Label: "Other", Value: OtherValue})
	}
	if q.AllowNone {
		options = append(options, Option{Label: "None of the above", Value: NoneValue})
	}
	return options
}

// Render produces the multi-line textual block for the question, independent
// of visibility (filtering happens one layer up, in the questionnaire). It is
// deterministic and never fails for a well-formed question.
func (q *Question) Render(responses Responses) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", q.Text, q.TypeLabel())

	switch q.Kind {
	case QuestionText:
		if clause := q.lengthClause(); clause != "" {
			fmt.Fprintf(&b, "  %s\n", clause)
		}
	case QuestionBoolean, QuestionRadio, QuestionDropdown:
		answer, answered := responses[q.ID]
		for _, opt := range q.EffectiveOptions() {
			writeOptionLine(&b, opt, answered && valueEqual(answer, opt.Value))
		}
	case QuestionCheckbox:
		for _, opt := range q.EffectiveOptions() {
			writeOptionLine(&b, opt, responses.Contains(q.ID, opt.Value))
		}
	}

	if q.Visibility != nil {
		fmt.Fprintf(&b, "  %s\n", visibilityLine(q.Visibility))
	}
	return b.String()
}

func (q *Question) lengthClause() string {
	switch {
	case q.MinLength != nil && q.MaxLength != nil:
		return fmt.Sprintf("You can enter at least %d and at most %d characters.", *q.MinLength, *q.MaxLength)
	case q.MinLength != nil:
		return fmt.Sprintf("You can enter at least %d characters.", *q.MinLength)
	case q.MaxLength != nil:
		return fmt.Sprintf("You can enter at most %d characters.", *q.MaxLength)
	default:
		return ""
	}
}

func writeOptionLine(b *strings.Builder, opt Option, selected bool) {
	mark := " "
	if selected {
		mark = "x"
	}
	if opt.ShowValue {
		fmt.Fprintf(b, "  [%s] %s (value: '%v')\n", mark, opt.Label, opt.Value)
		return
	}
	fmt.Fprintf(b, "  [%s] %s\n", mark, opt.Label)
}

// visibilityLine tags the trailing annotation with the top-level connective:
// plain for value checks and negations, AND/OR for composite roots.
func visibilityLine(c *Condition) string {
	switch c.Kind {
	case ConditionAnd:
		return "Visible when (AND): " + c.Describe()
	case ConditionOr:
		return "Visible when (OR): " + c.Describe()
	default:
		return "Visible when: " + c.Describe()
	}
}
