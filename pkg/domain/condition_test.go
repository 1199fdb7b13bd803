package domain

import "testing"

func TestValueCheckEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		responses Responses
		expected  any
		want      bool
	}{
		{"matching bool", Responses{"live_in_us": true}, true, true},
		{"mismatching bool", Responses{"live_in_us": false}, true, false},
		{"matching string", Responses{"live_in_us": "yes"}, "yes", true},
		{"string never equals bool", Responses{"live_in_us": "true"}, true, false},
		{"absent key is false", Responses{}, true, false},
		{"absent key is false for any value", Responses{"other": true}, "anything", false},
		{"nil snapshot is false", nil, true, false},
		{"int matches float", Responses{"live_in_us": float64(3)}, 3, true},
		{"int mismatches other float", Responses{"live_in_us": float64(3.5)}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewValueCheck("live_in_us", "Do you live in the US?", tt.expected)
			if got := c.Evaluate(tt.responses); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAndEvaluate(t *testing.T) {
	r := Responses{"a": true, "b": false}
	checkA := NewValueCheck("a", "", true)
	checkB := NewValueCheck("b", "", true)

	tests := []struct {
		name string
		cond *Condition
		want bool
	}{
		{"empty and is vacuously true", NewAnd(), true},
		{"all true", NewAnd(checkA), true},
		{"one false", NewAnd(checkA, checkB), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Evaluate(r); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrEvaluate(t *testing.T) {
	r := Responses{"a": true, "b": false}
	checkA := NewValueCheck("a", "", true)
	checkB := NewValueCheck("b", "", true)

	tests := []struct {
		name string
		cond *Condition
		want bool
	}{
		{"empty or is false", NewOr(), false},
		{"one true", NewOr(checkB, checkA), true},
		{"all false", NewOr(checkB), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Evaluate(r); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotEvaluate(t *testing.T) {
	check := NewValueCheck("a", "", true)

	snapshots := []Responses{
		{"a": true},
		{"a": false},
		{},
	}

	for _, r := range snapshots {
		if got := NewNot(check).Evaluate(r); got != !check.Evaluate(r) {
			t.Errorf("Not(c).Evaluate(%v) = %v, want negation of %v", r, got, check.Evaluate(r))
		}
		// Double negation is idempotent.
		if got := NewNot(NewNot(check)).Evaluate(r); got != check.Evaluate(r) {
			t.Errorf("Not(Not(c)).Evaluate(%v) = %v, want %v", r, got, check.Evaluate(r))
		}
	}
}

func TestDescribe(t *testing.T) {
	live := NewValueCheck("live_in_us", "Do you live in the US?", true)
	situation := NewValueCheck("which_situation", "Which situation?", "dv")

	tests := []struct {
		name string
		cond *Condition
		want string
	}{
		{"value check", live, "Do you live in the US?: true"},
		{"value check falls back to id", NewValueCheck("live_in_us", "", true), "live_in_us: true"},
		{"and", NewAnd(live, situation), "Do you live in the US?: true AND Which situation?: dv"},
		{"or", NewOr(live, situation), "Do you live in the US?: true OR Which situation?: dv"},
		{"not", NewNot(live), "NOT Do you live in the US?: true"},
		{"nested composite is parenthesized", NewNot(NewOr(live, situation)), "NOT (Do you live in the US?: true OR Which situation?: dv)"},
		{"and of or", NewAnd(live, NewOr(situation, live)), "Do you live in the US?: true AND (Which situation?: dv OR Do you live in the US?: true)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
