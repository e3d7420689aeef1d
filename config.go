package scenerender

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigFormat is returned by LoadConfig for a file that is
// neither TOML nor YAML.
var ErrUnknownConfigFormat = errors.New("scenerender: config must be .toml, .yaml or .yml")

// Config holds export defaults read from a file. Zero fields keep the
// built-in defaults.
type Config struct {
	Format     string   `toml:"format" yaml:"format"`
	Scale      float64  `toml:"scale" yaml:"scale"`
	Padding    *float64 `toml:"padding" yaml:"padding"`
	Background string   `toml:"background" yaml:"background"`
	DarkMode   bool     `toml:"dark_mode" yaml:"dark_mode"`

	JPEGQuality int `toml:"jpeg_quality" yaml:"jpeg_quality"`
	// Concurrency bounds parallel decoding of embedded files.
	Concurrency int `toml:"concurrency" yaml:"concurrency"`
}

// LoadConfig reads a TOML or YAML config file, chosen by extension.
// Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenerender: read config %s: %w", path, err)
	}
	var c Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("scenerender: parse config %s: %w", path, err)
	}
	if c.Format != "" {
		if _, err := ParseFormat(c.Format); err != nil {
			return nil, fmt.Errorf("scenerender: config %s: %w", path, err)
		}
	}
	return &c, nil
}

// RenderOptions applies the config on top of DefaultRenderOptions.
func (c *Config) RenderOptions() RenderOptions {
	opts := DefaultRenderOptions()
	if c == nil {
		return opts
	}
	if f, err := ParseFormat(c.Format); err == nil {
		opts.Format = f
	}
	if c.Scale > 0 {
		opts.Scale = c.Scale
	}
	if c.Padding != nil {
		opts.Padding = explicitPadding(*c.Padding)
	}
	opts.Background = c.Background
	opts.DarkMode = c.DarkMode
	return opts
}

// explicitPadding maps a user-given padding onto RenderOptions, where an
// explicit zero must not fall back to the default.
func explicitPadding(p float64) float64 {
	if p <= 0 {
		return NoPadding
	}
	return p
}

// Options returns the renderer options the config sets.
func (c *Config) Options() []Option {
	if c == nil {
		return nil
	}
	return []Option{
		WithJPEGQuality(c.JPEGQuality),
		WithConcurrency(c.Concurrency),
		WithDefaults(c.RenderOptions()),
	}
}
