// Package doctors loads the doctor directory offered by the booking form
// and answers label and typeahead queries over it.
package doctors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Doctor is one selectable practitioner.
type Doctor struct {
	ID        int    `toml:"id"`
	Name      string `toml:"name"`
	Specialty string `toml:"specialty"`
}

// Label renders the option text, e.g. "Dr. Smith (Cardiology)".
func (d Doctor) Label() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Specialty)
}

type directoryFile struct {
	Doctor []Doctor `toml:"doctor"`
}

const defaultDirectoryTOML = `# Doctors offered by the appointment form.
# Add a [[doctor]] block per practitioner. Names must be unique.

[[doctor]]
id = 1
name = "Dr. Smith"
specialty = "Cardiology"

[[doctor]]
id = 2
name = "Dr. Patel"
specialty = "Dermatology"

[[doctor]]
id = 3
name = "Dr. Nguyen"
specialty = "Pediatrics"
`

// Defaults returns the built-in directory written on first run.
func Defaults() []Doctor {
	docs, _ := Parse([]byte(defaultDirectoryTOML))
	return docs
}

// Load reads the directory at path. A missing file is created with the
// built-in defaults.
func Load(path string) ([]Doctor, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, fmt.Errorf("create doctors dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultDirectoryTOML), 0o644); wErr != nil {
			return nil, fmt.Errorf("write default doctors: %w", wErr)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read doctors: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML doctor directory.
func Parse(data []byte) ([]Doctor, error) {
	var f directoryFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse doctors.toml: %w", err)
	}
	seen := make(map[string]bool, len(f.Doctor))
	out := make([]Doctor, 0, len(f.Doctor))
	for i, d := range f.Doctor {
		d.Name = strings.TrimSpace(d.Name)
		d.Specialty = strings.TrimSpace(d.Specialty)
		if d.Name == "" {
			return nil, fmt.Errorf("doctor[%d]: name is required", i)
		}
		key := strings.ToLower(d.Name)
		if seen[key] {
			return nil, fmt.Errorf("doctor[%d] %q: duplicate name", i, d.Name)
		}
		seen[key] = true
		out = append(out, d)
	}
	return out, nil
}

// Save writes docs to path in the directory format.
func Save(path string, docs []Doctor) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create doctors dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(directoryFile{Doctor: docs}); err != nil {
		return fmt.Errorf("encode doctors.toml: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write doctors.toml: %w", err)
	}
	return nil
}

// IndexOf returns the position of the doctor called name, or -1.
func IndexOf(docs []Doctor, name string) int {
	for i := range docs {
		if strings.EqualFold(docs[i].Name, name) {
			return i
		}
	}
	return -1
}
