package cli

import (
	"fmt"
	"slices"
	"strings"
)

type outputFormat string

const (
	formatHex   outputFormat = "hex"
	formatRGB   outputFormat = "rgb"
	formatJSON  outputFormat = "json"
	formatTable outputFormat = "table"
)

// formatFlag is a pflag.Value restricted to a fixed set of formats.
type formatFlag struct {
	value   *outputFormat
	allowed []outputFormat
}

func newFormatFlag(p *outputFormat, def outputFormat, allowed ...outputFormat) *formatFlag {
	*p = def
	return &formatFlag{value: p, allowed: allowed}
}

func (f *formatFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f *formatFlag) Set(s string) error {
	v := outputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(f.allowed, v) {
		return fmt.Errorf("must be one of %s", f.names())
	}
	*f.value = v
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

func (f *formatFlag) names() string {
	names := make([]string, len(f.allowed))
	for i, v := range f.allowed {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
