// Package preset holds the canonical named option lists that questionnaire
// configs can reference instead of declaring options inline.
package preset

import (
	"sort"

	"github.com/aretw0/quire/pkg/domain"
)

// presets maps a preset name to its canonical, ordered option list.
// Lists are copied on resolve so callers can never mutate the canon.
var presets = map[string][]domain.Option{
	"gender": {
		{Label: "Woman", Value: "woman", ShowValue: true},
		{Label: "Man", Value: "man", ShowValue: true},
		{Label: "Non-binary", Value: "non_binary", ShowValue: true},
		{Label: "Prefer not to answer", Value: "no_answer", ShowValue: true},
	},
	"ethnicity": {
		{Label: "White", Value: "white", ShowValue: true},
		{Label: "Black or African American", Value: "black", ShowValue: true},
		{Label: "Hispanic or Latino", Value: "hispanic", ShowValue: true},
		{Label: "Asian", Value: "asian", ShowValue: true},
		{Label: "Native American", Value: "native_american", ShowValue: true},
		{Label: "Pacific Islander", Value: "pacific_islander", ShowValue: true},
	},
	"state": {
		{Label: "California", Value: "CA", ShowValue: true},
		{Label: "Florida", Value: "FL", ShowValue: true},
		{Label: "New York", Value: "NY", ShowValue: true},
		{Label: "Texas", Value: "TX", ShowValue: true},
		{Label: "Washington", Value: "WA", ShowValue: true},
	},
	"country": {
		{Label: "United States", Value: "us", ShowValue: true},
		{Label: "Canada", Value: "ca", ShowValue: true},
		{Label: "Mexico", Value: "mx", ShowValue: true},
	},
}

// Resolve returns a copy of the canonical option list for name.
// The second return reports whether the preset exists.
func Resolve(name string) ([]domain.Option, bool) {
	canonical, ok := presets[name]
	if !ok {
		return nil, false
	}
	options := make([]domain.Option, len(canonical))
	copy(options, canonical)
	return options, true
}

// Names returns all preset names, sorted for stable output.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
