package domain

// Option is a single selectable entry of a radio, checkbox or dropdown
// question. ShowValue controls whether the literal value is appended to the
// rendered line; config defaults it to true unless explicitly disabled.
type Option struct {
	Label     string `json:"label" yaml:"label"`
	Value     any    `json:"value" yaml:"value"`
	ShowValue bool   `json:"show_value" yaml:"show_value"`
}

// Sentinel values for the synthetic checkbox options.
const (
	// OtherValue marks the synthetic "Other" option added by allow_other.
	OtherValue = "_"
	// NoneValue marks the synthetic "None of the above" option added by allow_none.
	NoneValue = "none_of_the_above"
)
