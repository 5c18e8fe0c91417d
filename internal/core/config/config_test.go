package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icon_set: dots\nstale_days: 14\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dots", cfg.IconSet)
	assert.Equal(t, 14, cfg.StaleDays)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
	assert.True(t, cfg.CarryOver)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icon_set: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.TaskFile = "/tmp/my-tasks.md"
	cfg.IconSet = IconSetSimple
	cfg.CarryOver = false
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name  string
		field string
		mod   func(*Config)
	}{
		{"missing task file", "task_file", func(c *Config) { c.TaskFile = "" }},
		{"unknown icon set", "icon_set", func(c *Config) { c.IconSet = "emoji" }},
		{"unknown theme", "theme", func(c *Config) { c.Theme = "solarized" }},
		{"stale days too low", "stale_days", func(c *Config) { c.StaleDays = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mod(&cfg)

			err := cfg.Validate()
			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, c.field, fieldErrs[0].Field)
		})
	}
}
