// Swatch - A colour palette and shade explorer
//
// Swatch generates a palette of distinct colours, shows a ten-step shade
// ramp for any of them and copies shades to the clipboard.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
