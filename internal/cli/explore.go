package cli

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/prompt"
	"github.com/jmylchreest/swatch/internal/session"
	"github.com/spf13/cobra"
)

func newExploreCmd(a *app) *cobra.Command {
	seeds := &seedFlags{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the palette and copy shades interactively",
		Long: `Start the interactive explorer.

The palette is shown as a menu. Picking a colour shows its shade ramp, and
picking a shade copies its hex code to the clipboard. A confirmation is shown
briefly after each copy. Press esc to go back and ctrl+c to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExplore(cmd, seeds)
		},
	}

	seeds.register(cmd.Flags())

	return cmd
}

func (a *app) runExplore(cmd *cobra.Command, seeds *seedFlags) error {
	cfg := a.commandConfig(seeds, cmd.Flags())
	gen, err := a.newGenerator(cfg)
	if err != nil {
		return err
	}

	if !clipboard.Supported() {
		a.logger.Warn("no clipboard utility found, copying shades will fail")
	}

	s := session.New(gen, a.newClipboard(cfg), cfg.Shades.Step, a.logger.Named("session"))
	defer s.Close()

	err = s.Explore(cmd.Context(), a.prompter(cmd), cmd.OutOrStdout())
	if errors.Is(err, prompt.ErrNonInteractive) {
		return fmt.Errorf("explore needs an interactive terminal, try 'swatch palette' or 'swatch shades': %w", err)
	}
	return err
}

// prompter returns a huh prompter when both ends of the command are a terminal.
func (a *app) prompter(cmd *cobra.Command) prompt.Prompter {
	if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
		return prompt.NewHuhPrompter()
	}
	a.logger.Debug("not a terminal, prompts disabled")
	return &prompt.NoopPrompter{}
}
