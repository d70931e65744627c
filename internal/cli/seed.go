package cli

import (
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/spf13/pflag"
)

// seedFlags are the palette seed overrides shared by explore and palette.
type seedFlags struct {
	mode  string
	value int64
	text  string
}

func (s *seedFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&s.mode, "seed-mode", "", "seed mode (random, manual, text)")
	flags.Int64Var(&s.value, "seed", 0, "seed value, implies --seed-mode manual")
	flags.StringVar(&s.text, "seed-text", "", "seed phrase, implies --seed-mode text")
}

// apply copies any flags set on the command line over cfg.
func (s *seedFlags) apply(cfg *config.SeedConfig, flags *pflag.FlagSet) {
	if flags.Changed("seed") {
		v := s.value
		cfg.Mode = "manual"
		cfg.Value = &v
	}
	if flags.Changed("seed-text") {
		cfg.Mode = "text"
		cfg.Text = s.text
	}
	if flags.Changed("seed-mode") {
		cfg.Mode = s.mode
	}
}
