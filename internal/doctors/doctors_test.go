package doctors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	d := Doctor{ID: 1, Name: "Dr. Smith", Specialty: "Cardiology"}
	require.Equal(t, "Dr. Smith (Cardiology)", d.Label())
}

func TestParseValid(t *testing.T) {
	docs, err := Parse([]byte(`
[[doctor]]
id = 1
name = " Dr. Smith "
specialty = "Cardiology"

[[doctor]]
id = 7
name = "Dr. Lee"
specialty = "Oncology"
`))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, Doctor{ID: 1, Name: "Dr. Smith", Specialty: "Cardiology"}, docs[0])
	require.Equal(t, 7, docs[1].ID)
}

func TestParseRejectsMissingName(t *testing.T) {
	_, err := Parse([]byte("[[doctor]]\nid = 1\nspecialty = \"x\"\n"))
	require.ErrorContains(t, err, "name is required")
}

func TestParseRejectsDuplicateName(t *testing.T) {
	_, err := Parse([]byte(`
[[doctor]]
name = "Dr. Smith"
[[doctor]]
name = "dr. smith"
`))
	require.ErrorContains(t, err, "duplicate name")
}

func TestParseEmptyDirectory(t *testing.T) {
	docs, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doctors.toml")

	docs, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), docs)

	_, err = os.Stat(path)
	require.NoError(t, err, "default directory file should be written")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors.toml")
	want := []Doctor{{ID: 3, Name: "Dr. Ortiz", Specialty: "Neurology"}}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestIndexOf(t *testing.T) {
	docs := Defaults()
	require.Equal(t, 0, IndexOf(docs, "dr. smith"))
	require.Equal(t, -1, IndexOf(docs, "Dr. Who"))
}
