// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	noColour   bool
}

// annotationSkipConfig marks commands that run without loading the config
// file, so they keep working when the file is broken.
const annotationSkipConfig = "swatch/skip-config"

// app carries state resolved once in PersistentPreRunE and read by commands.
type app struct {
	opts   globalOptions
	logger hclog.Logger
	config *config.Config

	// writeClipboard is the clipboard backend; tests swap it out.
	writeClipboard clipboard.Writer
}

// NewRootCmd builds a fresh command tree. Each call returns independent
// flag state, so tests can execute several trees side by side.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{writeClipboard: clipboard.SystemWriter})
}

func newRootCmd(a *app) *cobra.Command {
	seeds := &seedFlags{}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A colour palette and shade explorer",
		Long: `Swatch generates a palette of distinct colours and lets you explore them.

Pick any colour to see a ten-step shade ramp from light (50) to dark (900),
then pick a shade to copy its hex code to the clipboard.

Run without a subcommand to start the interactive explorer.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExplore(cmd, seeds)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "config file (default "+displayPath(config.DefaultPath())+")")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&a.opts.noColour, "no-colour", false, "disable ANSI colour swatches")

	seeds.register(rootCmd.Flags())

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newExploreCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newShadesCmd(a))
	rootCmd.AddCommand(newCopyCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup resolves logging, colour output and configuration for every command.
// The config is merged but not validated here; commands validate the parts
// they use.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.opts.verbose && a.opts.quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.opts.verbose, a.opts.quiet)
	colour.DisableColourOutput = a.opts.noColour || !isTerminal(cmd.OutOrStdout())

	if cmd.Annotations[annotationSkipConfig] != "" {
		a.config = config.Default()
		return nil
	}

	path := a.opts.configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	} else {
		path = config.DefaultPath()
	}

	cfg, err := config.NewBuilder().
		WithFile(path).
		WithEnvConfig().
		WithoutValidation().
		Build()
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger.Debug("configuration loaded", "path", path)
	return nil
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}

// terminalWidth returns the width of the terminal behind v, or 0.
func terminalWidth(v any) int {
	f, ok := v.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd())) // #nosec G115 -- fd fits in int
	if err != nil {
		return 0
	}
	return width
}

func displayPath(path string) string {
	if path == "" {
		return "none"
	}
	return path
}
