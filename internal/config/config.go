// Package config loads swatch settings from defaults, a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/seed"
)

const (
	AppDir         = "swatch"
	ConfigFileName = "config.toml"

	DefaultToastDuration = 1500 * time.Millisecond
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of user-tunable settings.
type Config struct {
	// NearWhiteThreshold is the channel value R, G and B must all exceed for
	// a colour to be rejected as near-white.
	NearWhiteThreshold int             `toml:"near_white_threshold"`
	Palette            PaletteConfig   `toml:"palette"`
	Shades             ShadesConfig    `toml:"shades"`
	Clipboard          ClipboardConfig `toml:"clipboard"`
	Seed               SeedConfig      `toml:"seed"`
}

// PaletteConfig controls palette generation.
type PaletteConfig struct {
	Size              int      `toml:"size"`
	VividCount        int      `toml:"vivid_count"`
	Saturation        float64  `toml:"saturation"`
	Lightness         float64  `toml:"lightness"`
	Anchors           []string `toml:"anchors"`
	MaxRandomAttempts int      `toml:"max_random_attempts"`
}

// ShadesConfig controls shade ramps.
type ShadesConfig struct {
	Step float64 `toml:"step"`
}

// ClipboardConfig controls the copy confirmation.
type ClipboardConfig struct {
	ToastDuration Duration `toml:"toast_duration"`
}

// SeedConfig selects the palette seed.
type SeedConfig struct {
	Mode  string `toml:"mode"`
	Value *int64 `toml:"value,omitempty"`
	Text  string `toml:"text,omitempty"`
}

// Duration is a time.Duration written as a string ("1.5s") in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := colour.DefaultGeneratorOptions()
	return &Config{
		NearWhiteThreshold: opts.NearWhiteThreshold,
		Palette: PaletteConfig{
			Size:              opts.Size,
			VividCount:        opts.VividCount,
			Saturation:        opts.Saturation,
			Lightness:         opts.Lightness,
			Anchors:           opts.Anchors,
			MaxRandomAttempts: opts.MaxRandomAttempts,
		},
		Shades: ShadesConfig{
			Step: colour.DefaultShadeStep,
		},
		Clipboard: ClipboardConfig{
			ToastDuration: Duration{DefaultToastDuration},
		},
		Seed: SeedConfig{
			Mode: string(seed.ModeRandom),
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
// Returns an empty string if no config dir can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDir, ConfigFileName)
}

// LoadFile decodes path over cfg. A missing file is not an error.
func LoadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// GeneratorOptions maps the config onto palette generator options.
func (c *Config) GeneratorOptions() colour.GeneratorOptions {
	return colour.GeneratorOptions{
		Size:               c.Palette.Size,
		VividCount:         c.Palette.VividCount,
		Saturation:         c.Palette.Saturation,
		Lightness:          c.Palette.Lightness,
		NearWhiteThreshold: c.NearWhiteThreshold,
		Anchors:            c.Palette.Anchors,
		MaxRandomAttempts:  c.Palette.MaxRandomAttempts,
	}
}

// SeedConfig maps the config onto a seed configuration.
func (c *Config) SeedConfig() (seed.Config, error) {
	mode, err := seed.ParseMode(c.Seed.Mode)
	if err != nil {
		return seed.Config{}, err
	}
	return seed.Config{Mode: mode, Value: c.Seed.Value, Text: c.Seed.Text}, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := c.GeneratorOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := colour.ValidateShadeStep(c.Shades.Step); err != nil {
		return fmt.Errorf("%w: shades.step: %w", ErrInvalidConfig, err)
	}
	if c.Clipboard.ToastDuration.Duration <= 0 {
		return fmt.Errorf("%w: clipboard.toast_duration must be positive, got %s", ErrInvalidConfig, c.Clipboard.ToastDuration)
	}
	if _, err := c.SeedConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
