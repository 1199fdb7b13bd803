package domain

import (
	"fmt"
	"strings"
)

// ConditionKind discriminates the condition tree variants.
const (
	// ConditionValueCheck compares a prior answer against an expected value.
	ConditionValueCheck = "value_check"
	// ConditionAnd is true iff every child is true (vacuously true when empty).
	ConditionAnd = "and"
	// ConditionOr is true iff at least one child is true (false when empty).
	ConditionOr = "or"
	// ConditionNot negates its single child.
	ConditionNot = "not"
)

// Condition is a node in a visibility expression tree.
// Composite nodes (and/or/not) exclusively own their children; the tree is
// acyclic by construction and rooted at a Question's Visibility field.
type Condition struct {
	Kind string `json:"kind" yaml:"kind"`

	// ValueCheck configuration.
	QuestionID   string `json:"question_id,omitempty" yaml:"question_id,omitempty"`
	QuestionText string `json:"question_text,omitempty" yaml:"question_text,omitempty"`
	Expected     any    `json:"expected_value,omitempty" yaml:"expected_value,omitempty"`

	// Children holds the ordered operands of and/or nodes.
	Children []*Condition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	// Child is the single operand of a not node.
	Child *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// NewValueCheck builds a leaf comparing the answer to questionID against expected.
// questionText is display-only; it falls back to questionID when empty.
func NewValueCheck(questionID, questionText string, expected any) *Condition {
	if questionText == "" {
		questionText = questionID
	}
	return &Condition{
		Kind:         ConditionValueCheck,
		QuestionID:   questionID,
		QuestionText: questionText,
		Expected:     expected,
	}
}

// NewAnd builds a conjunction over the given children.
func NewAnd(children ...*Condition) *Condition {
	return &Condition{Kind: ConditionAnd, Children: children}
}

// NewOr builds a disjunction over the given children.
func NewOr(children ...*Condition) *Condition {
	return &Condition{Kind: ConditionOr, Children: children}
}

// NewNot builds the negation of child.
func NewNot(child *Condition) *Condition {
	return &Condition{Kind: ConditionNot, Child: child}
}

// Evaluate reports whether the condition holds against the response snapshot.
// It is total: an unanswered question makes a value check false rather than
// failing, and an unknown kind (impossible after construction) is false.
func (c *Condition) Evaluate(responses Responses) bool {
	switch c.Kind {
	case ConditionValueCheck:
		value, ok := responses[c.QuestionID]
		if !ok {
			return false
		}
		return valueEqual(value, c.Expected)
	case ConditionAnd:
		for _, child := range c.Children {
			if !child.Evaluate(responses) {
				return false
			}
		}
		return true
	case ConditionOr:
		for _, child := range c.Children {
			if child.Evaluate(responses) {
				return true
			}
		}
		return false
	case ConditionNot:
		return !c.Child.Evaluate(responses)
	default:
		return false
	}
}

// Describe renders a human-readable trace of the condition, used for the
// "visible when" annotation. Display-only; has no bearing on evaluation.
func (c *Condition) Describe() string {
	switch c.Kind {
	case ConditionValueCheck:
		return fmt.Sprintf("%s: %v", c.QuestionText, c.Expected)
	case ConditionAnd:
		return joinDescriptions(c.Children, " AND ")
	case ConditionOr:
		return joinDescriptions(c.Children, " OR ")
	case ConditionNot:
		return "NOT " + describeOperand(c.Child)
	default:
		return ""
	}
}

func joinDescriptions(children []*Condition, connective string) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		parts = append(parts, describeOperand(child))
	}
	return strings.Join(parts, connective)
}

// describeOperand parenthesizes composite operands so nested connectives
// remain unambiguous in the rendered trace.
func describeOperand(c *Condition) string {
	desc := c.Describe()
	if c.Kind == ConditionAnd || c.Kind == ConditionOr {
		return "(" + desc + ")"
	}
	return desc
}

// valueEqual implements strict type-and-value equality, unifying numeric
// types first: JSON decoding yields float64 where YAML yields int, and both
// must match the same expected value.
func valueEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		return ok && af == bf
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
