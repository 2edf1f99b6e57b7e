// SPDX-License-Identifier: MIT

// Package config loads the labyrinth configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/maze"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Logging  Logging  `yaml:"logging"`
	Markers  Markers  `yaml:"markers"`
	Render   Render   `yaml:"render"`
	Traverse Traverse `yaml:"traverse"`
	Matrix   Matrix   `yaml:"matrix"`
}

// Logging controls structured logging settings.
type Logging struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// Markers is the input alphabet of maze files. Each entry is one byte.
type Markers struct {
	Wall  string `yaml:"wall" validate:"glyph"`
	Open  string `yaml:"open" validate:"glyph"`
	Start string `yaml:"start" validate:"glyph"`
	Goal  string `yaml:"goal" validate:"glyph"`
}

// Render controls terminal output.
type Render struct {
	// Color is auto (colour only on a terminal), always or never.
	Color string `yaml:"color" validate:"oneof=auto always never"`
	// PathGlyph marks path cells in maze overlays.
	PathGlyph string `yaml:"path_glyph" validate:"required"`
	// BreachGlyph marks wall cells knocked down by the breach command.
	BreachGlyph string `yaml:"breach_glyph" validate:"required"`
}

// Traverse holds traversal defaults.
type Traverse struct {
	Strategy string `yaml:"strategy" validate:"oneof=preorder inorder postorder bfs greedy all"`
}

// Matrix bounds dense matrix output.
type Matrix struct {
	// MaxNodes refuses to print matrices for larger graphs; 0 disables the limit.
	MaxNodes int `yaml:"max_nodes" validate:"gte=0"`
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultColor         = "auto"
	defaultPathGlyph     = "·"
	defaultBreachGlyph   = "#"
	defaultStrategy      = "all"
	defaultMaxNodes      = 400
)

// configValidate is the shared validator instance with the custom "glyph" rule.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("glyph", validateGlyph)
}

// validateGlyph accepts strings that are exactly one byte long.
func validateGlyph(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) == 1
}

// Default returns the built-in configuration.
func Default() Config {
	m := maze.DefaultMarkers()

	return Config{
		Logging: Logging{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Markers: Markers{
			Wall:  string(m.Wall),
			Open:  string(m.Open),
			Start: string(m.Start),
			Goal:  string(m.Goal),
		},
		Render: Render{
			Color:       defaultColor,
			PathGlyph:   defaultPathGlyph,
			BreachGlyph: defaultBreachGlyph,
		},
		Traverse: Traverse{Strategy: defaultStrategy},
		Matrix:   Matrix{MaxNodes: defaultMaxNodes},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate runs the struct tags and checks that the markers are distinct.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.MazeMarkers().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// MazeMarkers converts the configured alphabet for maze.WithMarkers.
// Call only on a validated Config.
func (c Config) MazeMarkers() maze.Markers {
	return maze.Markers{
		Wall:  firstByte(c.Markers.Wall),
		Open:  firstByte(c.Markers.Open),
		Start: firstByte(c.Markers.Start),
		Goal:  firstByte(c.Markers.Goal),
	}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}

	return s[0]
}
