package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPTBOOK_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "Book an Appointment", cfg.UI.Title)
	require.Equal(t, "doctors.toml", filepath.Base(cfg.Doctors.Path))
	require.Equal(t, "apptbook.log", filepath.Base(cfg.Log.File))
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[doctors]
path = "/srv/clinic/doctors.toml"

[log]
level = "DEBUG"

[ui]
title = "Clinic Booking"
`), 0o644))
	t.Setenv("APPTBOOK_UI_TITLE", "Front Desk")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/clinic/doctors.toml", cfg.Doctors.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "Front Desk", cfg.UI.Title)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")
	want := Config{
		Doctors: DoctorsConfig{Path: "/tmp/doctors.toml"},
		Log:     LogConfig{Level: "warn", File: "/tmp/apptbook.log"},
		UI:      UIConfig{Title: "Walk-in"},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
