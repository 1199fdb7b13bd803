// Package validator performs structural pre-validation of raw questionnaire
// documents. It runs before the builder and rejects malformed documents with
// every failure reported; the builder may assume a structurally sound input
// and only guards against semantically unknown type tags.
package validator

import (
	"fmt"

	"github.com/aretw0/quire/pkg/domain"
)

var questionTypes = map[string]bool{
	domain.QuestionText:     true,
	domain.QuestionBoolean:  true,
	domain.QuestionRadio:    true,
	domain.QuestionCheckbox: true,
	domain.QuestionDropdown: true,
}

var conditionTypes = map[string]bool{
	domain.ConditionValueCheck: true,
	domain.ConditionAnd:        true,
	domain.ConditionOr:         true,
	domain.ConditionNot:        true,
}

// ValidateDocument checks a raw questionnaire document for structural
// soundness: required fields, enum membership, unique question ids, and
// recursively well-formed visibility trees. All failures are collected into
// one AggregateError.
func ValidateDocument(doc map[string]any) error {
	v := &run{}

	v.requireString(doc, "id", "id")
	v.requireString(doc, "title", "title")

	questions, ok := doc["questions"].([]any)
	if !ok {
		v.add("questions", "required and must be a list", doc["questions"])
		return v.result()
	}

	seen := make(map[string]bool)
	for i, entry := range questions {
		path := fmt.Sprintf("questions[%d]", i)
		question, ok := entry.(map[string]any)
		if !ok {
			v.add(path, "must be a mapping", entry)
			continue
		}
		v.validateQuestion(path, question, seen)
	}

	return v.result()
}

type run struct {
	errs []error
}

func (v *run) add(path, reason string, value any) {
	v.errs = append(v.errs, &ValidationError{Path: path, Reason: reason, Value: value})
}

func (v *run) result() error {
	if len(v.errs) > 0 {
		return &AggregateError{Errors: v.errs}
	}
	return nil
}

func (v *run) requireString(m map[string]any, key, path string) string {
	value, exists := m[key]
	if !exists {
		v.add(path, "required", nil)
		return ""
	}
	s, ok := value.(string)
	if !ok || s == "" {
		v.add(path, "must be a non-empty string", value)
		return ""
	}
	return s
}

func (v *run) validateQuestion(path string, question map[string]any, seen map[string]bool) {
	id := v.requireString(question, "id", path+".id")
	if id != "" {
		if seen[id] {
			v.add(path+".id", fmt.Sprintf("duplicate question id %q", id), nil)
		}
		seen[id] = true
	}
	v.requireString(question, "text", path+".text")

	kind := v.requireString(question, "type", path+".type")
	if kind != "" && !questionTypes[kind] {
		v.add(path+".type", fmt.Sprintf("unknown question type %q", kind), nil)
		kind = ""
	}

	switch kind {
	case domain.QuestionText:
		min := v.optionalInt(question, "min_length", path+".min_length")
		max := v.optionalInt(question, "max_length", path+".max_length")
		if min != nil && max != nil && *min > *max {
			v.add(path+".min_length", "must not exceed max_length", *min)
		}
	case domain.QuestionRadio, domain.QuestionDropdown, domain.QuestionCheckbox:
		v.validateOptionSource(path, question)
		if kind == domain.QuestionCheckbox {
			v.optionalBool(question, "allow_other", path+".allow_other")
			v.optionalBool(question, "allow_none", path+".allow_none")
		}
	}

	if visibility, exists := question["visibility"]; exists {
		v.validateCondition(path+".visibility", visibility)
	}
}

// validateOptionSource requires exactly one of literal options or a preset
// name for the option-bearing kinds.
func (v *run) validateOptionSource(path string, question map[string]any) {
	_, hasOptions := question["options"]
	_, hasPreset := question["preset"]

	switch {
	case hasOptions && hasPreset:
		v.add(path, "options and preset are mutually exclusive", nil)
	case hasPreset:
		v.requireString(question, "preset", path+".preset")
	case hasOptions:
		options, ok := question["options"].([]any)
		if !ok {
			v.add(path+".options", "must be a list", question["options"])
			return
		}
		for i, entry := range options {
			optPath := fmt.Sprintf("%s.options[%d]", path, i)
			option, ok := entry.(map[string]any)
			if !ok {
				v.add(optPath, "must be a mapping", entry)
				continue
			}
			v.requireString(option, "label", optPath+".label")
			if _, exists := option["value"]; !exists {
				v.add(optPath+".value", "required", nil)
			}
			v.optionalBool(option, "show_value", optPath+".show_value")
		}
	default:
		v.add(path, "requires either options or preset", nil)
	}
}

func (v *run) validateCondition(path string, raw any) {
	condition, ok := raw.(map[string]any)
	if !ok {
		v.add(path, "must be a mapping", raw)
		return
	}

	kind := v.requireString(condition, "type", path+".type")
	if kind != "" && !conditionTypes[kind] {
		v.add(path+".type", fmt.Sprintf("unknown condition type %q", kind), nil)
		return
	}

	switch kind {
	case domain.ConditionValueCheck:
		v.requireString(condition, "question_id", path+".question_id")
		if _, exists := condition["expected_value"]; !exists {
			v.add(path+".expected_value", "required", nil)
		}
	case domain.ConditionAnd, domain.ConditionOr:
		children, ok := condition["conditions"].([]any)
		if !ok {
			v.add(path+".conditions", "required and must be a list", condition["conditions"])
			return
		}
		for i, child := range children {
			v.validateCondition(fmt.Sprintf("%s.conditions[%d]", path, i), child)
		}
	case domain.ConditionNot:
		child, exists := condition["condition"]
		if !exists {
			v.add(path+".condition", "required", nil)
			return
		}
		v.validateCondition(path+".condition", child)
	}
}

// optionalInt accepts ints and whole floats, the two shapes numeric config
// values take after YAML and JSON decoding respectively.
func (v *run) optionalInt(m map[string]any, key, path string) *int {
	value, exists := m[key]
	if !exists {
		return nil
	}
	switch n := value.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		if n == float64(int64(n)) {
			i := int(n)
			return &i
		}
	}
	v.add(path, "must be an integer", value)
	return nil
}

func (v *run) optionalBool(m map[string]any, key, path string) {
	value, exists := m[key]
	if !exists {
		return
	}
	if _, ok := value.(bool); !ok {
		v.add(path, "must be a boolean", value)
	}
}
