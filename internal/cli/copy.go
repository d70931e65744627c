package cli

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/util"
	"github.com/spf13/cobra"
)

func newCopyCmd(a *app) *cobra.Command {
	var stripHash bool

	cmd := &cobra.Command{
		Use:   "copy <hex>",
		Short: "Copy a hex colour to the clipboard",
		Long: `Normalise a hex colour and copy it to the clipboard.

Short forms are expanded, so "#36C" is copied as "#3366cc".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			text := c.Hex()
			if stripHash {
				text = util.StripHash(text)
			}
			return a.copyText(cmd, a.config, text)
		},
	}

	cmd.Flags().BoolVar(&stripHash, "strip-hash", false, "copy without the leading #")

	return cmd
}

func (a *app) newClipboard(cfg *config.Config) *clipboard.Clipboard {
	notifier := clipboard.NewNotifier(cfg.Clipboard.ToastDuration.Duration)
	return clipboard.New(a.writeClipboard, notifier, a.logger.Named("clipboard"))
}

// copyText performs a one-shot copy and reports the outcome on stderr.
func (a *app) copyText(cmd *cobra.Command, cfg *config.Config, text string) error {
	clip := a.newClipboard(cfg)
	defer clip.Notifier().Stop()

	if err := clip.Copy(text); err != nil {
		return err
	}
	if !a.opts.quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), clip.Notifier().Current())
	}
	return nil
}
