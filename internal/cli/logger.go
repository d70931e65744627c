package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the command logger. Warnings are shown by default,
// --verbose adds debug output and --quiet silences everything.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "swatch",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
	})
}
