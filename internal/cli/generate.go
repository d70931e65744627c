package cli

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/seed"
	"github.com/spf13/pflag"
)

// commandConfig returns a copy of the loaded config with the seed flags applied.
func (a *app) commandConfig(seeds *seedFlags, flags *pflag.FlagSet) *config.Config {
	cfg := *a.config
	cfg.Palette.Anchors = append([]string(nil), a.config.Palette.Anchors...)
	if seeds != nil {
		seeds.apply(&cfg.Seed, flags)
	}
	return &cfg
}

// newGenerator validates cfg and returns a generator seeded from it.
func (a *app) newGenerator(cfg *config.Config) (*colour.Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seedConfig, err := cfg.SeedConfig()
	if err != nil {
		return nil, err
	}
	value, err := seed.Calculate(seedConfig)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("palette seed", "mode", seedConfig.Mode, "seed", value)

	gen, err := colour.NewGenerator(cfg.GeneratorOptions(), seed.NewRand(value), a.logger.Named("generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return gen, nil
}
