package domain

// Responses is the externally supplied, read-only snapshot of answers,
// keyed by question id. Single-answer kinds map to a scalar; checkbox maps
// to a list of scalars. The engine never mutates a snapshot.
type Responses map[string]any

// List coerces the answer for id into a slice, the shape checkbox answers
// take after JSON or YAML decoding. A scalar or missing answer yields nil.
func (r Responses) List(id string) []any {
	value, ok := r[id]
	if !ok {
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	return list
}

// Contains reports whether the (list-valued) answer for id includes value,
// using the same strict equality as condition evaluation.
func (r Responses) Contains(id string, value any) bool {
	for _, item := range r.List(id) {
		if valueEqual(item, value) {
			return true
		}
	}
	return false
}
