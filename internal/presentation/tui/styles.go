package tui

import "github.com/muesli/termenv"

// Styles colorizes rendered questionnaire text. It is built from an explicit
// enabled flag threaded by the caller; there is no ambient global toggle.
type Styles struct {
	profile termenv.Profile
}

// NewStyles creates a style set. When enabled is false every style degrades
// to the identity function (the Ascii profile drops all attributes).
func NewStyles(enabled bool) *Styles {
	profile := termenv.Ascii
	if enabled {
		profile = termenv.ColorProfile()
	}
	return &Styles{profile: profile}
}

// Title styles the questionnaire title header.
func (s *Styles) Title(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#38bdf8")).Bold().String()
}

// Number styles a question's display number.
func (s *Styles) Number(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#a78bfa")).String()
}

// Prompt styles a question prompt in interactive mode.
func (s *Styles) Prompt(text string) string {
	return s.profile.String(text).Bold().String()
}

// Hint styles secondary information such as visibility annotations and
// constraint clauses.
func (s *Styles) Hint(text string) string {
	return s.profile.String(text).Faint().String()
}

// ErrorText styles validation feedback shown during input retry loops.
func (s *Styles) ErrorText(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#fb7185")).String()
}
