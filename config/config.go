// Package config holds the immutable session configuration
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/snake/core"
)

// Defaults reproduce the classic board
const (
	DefaultWidth        = 100
	DefaultHeight       = 50
	DefaultTickInterval = 100 * time.Millisecond
	DefaultLength       = 7
	DefaultDensity      = 0.3
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Theme holds presentation choices only; nothing in the engine reads it
type Theme struct {
	SnakeRune      string `yaml:"snake_rune"`
	SnakeColor     string `yaml:"snake_color"`
	AppleRune      string `yaml:"apple_rune"`
	AppleColor     string `yaml:"apple_color"`
	BackgroundRune string `yaml:"background_rune"`
	// Empty means terminal default
	BackgroundColor string `yaml:"background_color"`
}

// Config is fixed for the duration of a session
type Config struct {
	Width        int            `yaml:"width"`
	Height       int            `yaml:"height"`
	TickInterval time.Duration  `yaml:"tick_interval"`
	Length       int            `yaml:"length"`
	Start        core.Point     `yaml:"start"`
	Heading      core.Direction `yaml:"heading"`
	// Density scales the target apple count: round((w + h - length) * density)
	Density float64 `yaml:"density"`
	// Seed 0 selects a time-based seed
	Seed  uint64 `yaml:"seed"`
	Sound bool   `yaml:"sound"`
	Theme Theme  `yaml:"theme"`

	// startPinned is set when a document names the start cell
	startPinned bool
}

// DefaultTheme returns the blue snake, red apples on a dotted field
func DefaultTheme() Theme {
	return Theme{
		SnakeRune:      "o",
		SnakeColor:     "blue",
		AppleRune:      "x",
		AppleColor:     "red",
		BackgroundRune: ".",
	}
}

// Default returns the classic 100x50 configuration with the snake on the left edge at mid-height
func Default() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		TickInterval: DefaultTickInterval,
		Length:       DefaultLength,
		Start:        core.Point{X: 0, Y: DefaultHeight / 2},
		Heading:      core.Right,
		Density:      DefaultDensity,
		Theme:        DefaultTheme(),
	}
}

// Load reads a YAML document over the defaults. An empty path returns defaults
// When the file changes the height but not the start, the start row follows the new mid-height
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not mention
func Parse(data []byte, cfg *Config) error {
	var probe struct {
		Start *core.Point `yaml:"start"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}

	height := cfg.Height
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return err
	}
	if probe.Start != nil {
		cfg.startPinned = true
	} else if cfg.Height != height {
		cfg.SetHeight(cfg.Height)
	}
	return nil
}

// SetHeight changes the grid height. The start row follows the new mid-height
// unless a parsed document pinned the start
func (c *Config) SetHeight(h int) {
	c.Height = h
	if !c.startPinned {
		c.Start.Y = h / 2
	}
}

// Grid returns the play area
func (c Config) Grid() core.Area {
	return core.Grid(c.Width, c.Height)
}

// Validate rejects configurations that cannot start a session
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalid, "grid %dx%d must be positive", c.Width, c.Height)
	}
	if c.Length < 1 {
		return errors.Wrapf(ErrInvalid, "snake length %d must be at least 1", c.Length)
	}
	if c.Length > c.Width*c.Height {
		return errors.Wrapf(ErrInvalid, "snake length %d exceeds grid capacity %d", c.Length, c.Width*c.Height)
	}
	if !c.Heading.Valid() {
		return errors.Wrapf(ErrInvalid, "heading %v", c.Heading)
	}
	grid := c.Grid()
	head := c.Start
	tail := head
	for i := 1; i < c.Length; i++ {
		head = head.Add(c.Heading.Offset())
	}
	if !grid.Contains(tail) || !grid.Contains(head) {
		return errors.Wrapf(ErrInvalid, "initial snake %v..%v leaves the %dx%d grid", tail, head, c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(ErrInvalid, "density %g outside [0,1]", c.Density)
	}
	if c.TickInterval <= 0 {
		return errors.Wrapf(ErrInvalid, "tick interval %v must be positive", c.TickInterval)
	}
	return nil
}
