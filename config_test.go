package scenerender

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "config.toml", `
format = "svg"
scale = 2.0
padding = 0.0
background = "#000000"
dark_mode = true
jpeg_quality = 80
concurrency = 2
`},
		{"yaml", "config.yaml", `
format: svg
scale: 2
padding: 0
background: "#000000"
dark_mode: true
jpeg_quality: 80
concurrency: 2
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, 80, c.JPEGQuality)
			assert.Equal(t, 2, c.Concurrency)

			opts := c.RenderOptions()
			assert.Equal(t, FormatSVG, opts.Format)
			assert.Equal(t, 2.0, opts.Scale)
			assert.Equal(t, NoPadding, opts.Padding)
			assert.Equal(t, "#000000", opts.Background)
			assert.True(t, opts.DarkMode)

			r := newRenderer(t, c.Options()...)
			assert.Equal(t, opts, r.Defaults())
			assert.Equal(t, 80, r.cfg.jpegQuality)
			assert.Equal(t, 2, r.cfg.concurrency)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultRenderOptions(), c.RenderOptions())

	var nilConfig *Config
	assert.Equal(t, DefaultRenderOptions(), nilConfig.RenderOptions())
	assert.Nil(t, nilConfig.Options())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "config.json", "{}"))
	assert.ErrorIs(t, err, ErrUnknownConfigFormat)

	_, err = LoadConfig(writeConfig(t, "config.toml", "colour = \"red\"\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = LoadConfig(writeConfig(t, "config.yaml", "colour: red\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = LoadConfig(writeConfig(t, "config.toml", "format = \"gif\"\n"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
