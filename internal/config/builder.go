package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by WithEnvConfig.
const (
	EnvNearWhiteThreshold = "SWATCH_NEAR_WHITE_THRESHOLD"
	EnvPaletteSize        = "SWATCH_PALETTE_SIZE"
	EnvMaxRandomAttempts  = "SWATCH_MAX_RANDOM_ATTEMPTS"
	EnvAnchors            = "SWATCH_ANCHORS"
	EnvShadeStep          = "SWATCH_SHADE_STEP"
	EnvToastDuration      = "SWATCH_TOAST_DURATION"
	EnvSeedMode           = "SWATCH_SEED_MODE"
	EnvSeed               = "SWATCH_SEED"
	EnvSeedText           = "SWATCH_SEED_TEXT"
)

// Builder layers configuration sources. Later sources win:
// defaults, then the file, then the environment.
type Builder struct {
	base         *Config
	filePath     string
	useEnv       bool
	skipValidate bool
}

// NewBuilder creates a new Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{base: Default()}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(cfg *Config) *Builder {
	b.base = cfg
	return b
}

// WithFile sets the TOML file to load. An empty path skips the file.
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = path
	return b
}

// WithEnvConfig enables SWATCH_* environment overrides.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithoutValidation makes Build return the merged config even when a value
// is out of range. Callers validate the parts they use.
func (b *Builder) WithoutValidation() *Builder {
	b.skipValidate = true
	return b
}

// Build loads every source and, unless WithoutValidation was used, validates
// the result.
func (b *Builder) Build() (*Config, error) {
	cfg := *b.base
	cfg.Palette.Anchors = append([]string(nil), b.base.Palette.Anchors...)

	if err := LoadFile(&cfg, b.filePath); err != nil {
		return nil, err
	}

	if b.useEnv {
		if err := applyEnv(&cfg); err != nil {
			return nil, err
		}
	}

	if b.skipValidate {
		return &cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvNearWhiteThreshold); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvNearWhiteThreshold, err)
		}
		cfg.NearWhiteThreshold = n
	}
	if v, ok := os.LookupEnv(EnvPaletteSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvPaletteSize, err)
		}
		cfg.Palette.Size = n
	}
	if v, ok := os.LookupEnv(EnvMaxRandomAttempts); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvMaxRandomAttempts, err)
		}
		cfg.Palette.MaxRandomAttempts = n
	}
	if v, ok := os.LookupEnv(EnvAnchors); ok {
		cfg.Palette.Anchors = parseList(v)
	}
	if v, ok := os.LookupEnv(EnvShadeStep); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvShadeStep, err)
		}
		cfg.Shades.Step = f
	}
	if v, ok := os.LookupEnv(EnvToastDuration); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError(EnvToastDuration, err)
		}
		cfg.Clipboard.ToastDuration = Duration{d}
	}
	if v, ok := os.LookupEnv(EnvSeedMode); ok {
		cfg.Seed.Mode = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, err)
		}
		cfg.Seed.Value = &n
	}
	if v, ok := os.LookupEnv(EnvSeedText); ok {
		cfg.Seed.Text = v
	}
	return nil
}

func envError(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
}

// parseList splits a comma-separated list, dropping empty entries.
func parseList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
