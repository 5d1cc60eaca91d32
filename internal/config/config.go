// Package config loads the optional clock.yaml file and turns it into a
// clock.Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/progress"
)

// Config mirrors clock.yaml. Every field is optional.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Clock     ClockConfig     `yaml:"clock"`
	Animation AnimationConfig `yaml:"animation"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Sound     SoundConfig     `yaml:"sound"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
	TPS    int    `yaml:"tps,omitempty"`
}

// ClockConfig selects colors, counts and randomness.
type ClockConfig struct {
	Palette       string         `yaml:"palette,omitempty"`
	CustomPalette *PaletteConfig `yaml:"custom_palette,omitempty"`
	Seed          *int64         `yaml:"seed,omitempty"`
	MaxCount      *int           `yaml:"max_count,omitempty"`
	HourCount     *int           `yaml:"hour_count,omitempty"`
	MinuteCount   *int           `yaml:"minute_count,omitempty"`
	Population    *Population    `yaml:"population,omitempty"`
	Fade          *bool          `yaml:"fade,omitempty"`
	Turbulence    float64        `yaml:"turbulence,omitempty"`
}

// PaletteConfig defines a palette with hex colors.
type PaletteConfig struct {
	Name       string   `yaml:"name"`
	Main       []string `yaml:"main"`
	Handle     string   `yaml:"handle"`
	Divider    string   `yaml:"divider"`
	Border     string   `yaml:"border"`
	Background string   `yaml:"background"`
}

// Population overrides particle slot counts.
type Population struct {
	Background int `yaml:"background"`
	Hour       int `yaml:"hour"`
	Minute     int `yaml:"minute"`
}

// AnimationConfig tunes the progress driver.
type AnimationConfig struct {
	Period time.Duration `yaml:"period,omitempty"`
	Easing string        `yaml:"easing,omitempty"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	Scale float64 `yaml:"scale,omitempty"` // canvas units per half-block pixel
	FPS   int     `yaml:"fps,omitempty"`
	// LogFile receives log output while the terminal is in use; empty
	// discards it.
	LogFile string `yaml:"log_file,omitempty"`
}

// SoundConfig enables the per-second tick.
type SoundConfig struct {
	Tick      bool    `yaml:"tick"`
	Frequency float64 `yaml:"frequency,omitempty"`
	Volume    float64 `yaml:"volume,omitempty"`
}

// Defaults
const (
	DefaultWidth         = 800
	DefaultHeight        = 800
	DefaultTitle         = "Particle Clock"
	DefaultTPS           = 60
	DefaultTerminalScale = 8
	DefaultTerminalFPS   = 30
	DefaultTickFrequency = 1200
	DefaultTickVolume    = 0.3
)

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadOptional reads path if it exists; a missing file yields defaults.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.TPS <= 0 {
		c.Window.TPS = DefaultTPS
	}
	if c.Clock.Palette == "" {
		c.Clock.Palette = clock.Adrift.Name
	}
	if c.Animation.Period <= 0 {
		c.Animation.Period = progress.DefaultPeriod
	}
	if c.Terminal.Scale <= 0 {
		c.Terminal.Scale = DefaultTerminalScale
	}
	if c.Terminal.FPS <= 0 {
		c.Terminal.FPS = DefaultTerminalFPS
	}
	if c.Sound.Frequency <= 0 {
		c.Sound.Frequency = DefaultTickFrequency
	}
	if c.Sound.Volume <= 0 {
		c.Sound.Volume = DefaultTickVolume
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Palette(); err != nil {
		return err
	}
	if p := c.Clock.Population; p != nil && (p.Background < 0 || p.Hour < 0 || p.Minute < 0) {
		return fmt.Errorf("population counts must not be negative: %+v", *p)
	}
	if _, err := progress.CurveByName(c.Animation.Easing); err != nil {
		return err
	}
	if c.Sound.Volume > 1 {
		return fmt.Errorf("sound volume %v above 1", c.Sound.Volume)
	}
	return nil
}

// Palette resolves the configured palette.
func (c *Config) Palette() (clock.Palette, error) {
	pc := c.Clock.CustomPalette
	if pc == nil {
		return clock.PaletteByName(c.Clock.Palette)
	}

	p := clock.Palette{Name: pc.Name}
	if len(pc.Main) == 0 {
		return clock.Palette{}, fmt.Errorf("custom palette %q has no main colors", pc.Name)
	}
	for _, s := range pc.Main {
		col, err := clock.ParseColor(s)
		if err != nil {
			return clock.Palette{}, err
		}
		p.Main = append(p.Main, col)
	}
	for _, f := range []struct {
		dst *color.NRGBA
		src string
	}{
		{&p.Handle, pc.Handle},
		{&p.Divider, pc.Divider},
		{&p.Border, pc.Border},
		{&p.Background, pc.Background},
	} {
		col, err := clock.ParseColor(f.src)
		if err != nil {
			return clock.Palette{}, err
		}
		*f.dst = col
	}
	return p, nil
}

// Curve resolves the configured easing.
func (c *Config) Curve() progress.Curve {
	curve, err := progress.CurveByName(c.Animation.Easing)
	if err != nil {
		return progress.Linear
	}
	return curve
}

// ClockConfig builds the shared simulation configuration.
func (c *Config) ClockConfig() (*clock.Config, error) {
	pal, err := c.Palette()
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if c.Clock.Seed != nil {
		rng = rand.New(rand.NewSource(*c.Clock.Seed))
	}
	cc := clock.NewConfig(rng)
	cc.Palette = pal
	cc.Turbulence = c.Clock.Turbulence

	if c.Clock.MaxCount != nil {
		cc.MaxCount = *c.Clock.MaxCount
	}
	if c.Clock.HourCount != nil {
		cc.HourCount = *c.Clock.HourCount
	}
	if c.Clock.MinuteCount != nil {
		cc.MinuteCount = *c.Clock.MinuteCount
	}
	if p := c.Clock.Population; p != nil {
		cc.Population = clock.Population{Background: p.Background, Hour: p.Hour, Minute: p.Minute}
	}
	if c.Clock.Fade != nil {
		cc.Fade = *c.Clock.Fade
	}
	return cc, nil
}
