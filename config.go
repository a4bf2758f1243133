package tiles

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the optional config file looked up in the working directory.
const ConfigFilename = "tiles.yml"

// Config holds everything the program can be tuned with.
// The zero file (or no file) gives DefaultConfig.
type Config struct {
	Title        string     `yaml:"title"`
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	Fullscreen   bool       `yaml:"fullscreen"`
	VSync        bool       `yaml:"vsync"`
	HandleResize bool       `yaml:"handle_resize"`
	TileSize     float32    `yaml:"tile_size"`
	Layers       int        `yaml:"layers"`
	AtlasColumns int        `yaml:"atlas_columns"`
	Texture      string     `yaml:"texture"`
	ClearColor   [4]float32 `yaml:"clear_color"`
}

// DefaultConfig returns the 1920x1080, 32px, six-layer setup.
func DefaultConfig() Config {
	return Config{
		Title:        "tiles",
		Width:        1920,
		Height:       1080,
		HandleResize: true,
		TileSize:     32,
		Layers:       6,
		AtlasColumns: 6,
		Texture:      "opengl.png",
		ClearColor:   [4]float32{0.5, 0, 0, 1},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the window and grid settings.
func (c Config) Validate() error {
	if c.Texture == "" {
		return errors.New("config: texture path is empty")
	}
	return c.Grid().Validate()
}

// Grid returns the tile grid for the configured viewport.
func (c Config) Grid() Grid {
	return NewGrid(c.TileSize, Viewport{Width: c.Width, Height: c.Height}, c.Layers, c.AtlasColumns)
}
