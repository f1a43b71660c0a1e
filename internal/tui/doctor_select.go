package tui

import (
	"strings"

	"github.com/jask/apptbook/internal/doctors"
)

// placeholderOption is the first entry of the doctor select and maps to an
// empty doctor field.
const placeholderOption = "Choose a doctor"

// doctorSelect is a single-choice list: the placeholder followed by one
// option per doctor. Typing narrows the choice to the best matching doctor.
type doctorSelect struct {
	docs   []doctors.Doctor
	cursor int // 0 is the placeholder
	query  string
}

func newDoctorSelect(docs []doctors.Doctor) doctorSelect {
	return doctorSelect{docs: append([]doctors.Doctor(nil), docs...)}
}

// Options returns the rendered option labels, placeholder first.
func (s doctorSelect) Options() []string {
	out := make([]string, 0, len(s.docs)+1)
	out = append(out, placeholderOption)
	for _, d := range s.docs {
		out = append(out, d.Label())
	}
	return out
}

// Value is the selected doctor's name, or "" for the placeholder.
func (s doctorSelect) Value() string {
	if s.cursor <= 0 || s.cursor > len(s.docs) {
		return ""
	}
	return s.docs[s.cursor-1].Name
}

func (s *doctorSelect) Move(delta int) {
	n := len(s.docs) + 1
	s.cursor = ((s.cursor+delta)%n + n) % n
	s.query = ""
}

// SetValue selects the doctor called name; unknown names select the placeholder.
func (s *doctorSelect) SetValue(name string) {
	s.cursor = doctors.IndexOf(s.docs, name) + 1
	s.query = ""
}

// Type appends typed text to the search query and jumps to the best match.
func (s *doctorSelect) Type(text string) {
	s.query += text
	s.search()
}

func (s *doctorSelect) Backspace() {
	if s.query == "" {
		return
	}
	r := []rune(s.query)
	s.query = string(r[:len(r)-1])
	s.search()
}

func (s *doctorSelect) ResetQuery() { s.query = "" }

func (s doctorSelect) Query() string { return s.query }

func (s *doctorSelect) search() {
	if strings.TrimSpace(s.query) == "" {
		return
	}
	if i := doctors.Best(s.docs, s.query); i >= 0 {
		s.cursor = i + 1
	}
}
