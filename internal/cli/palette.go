package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/spf13/cobra"
)

// listSwatchWidth is the swatch width of one-column previews.
const listSwatchWidth = 4

type paletteOptions struct {
	size    int
	format  outputFormat
	preview bool
	columns int
}

func newPaletteCmd(a *app) *cobra.Command {
	opts := &paletteOptions{}
	seeds := &seedFlags{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a colour palette",
		Long: `Generate a palette of distinct colours and print it.

The palette starts with an even sweep of vivid hues, always includes a fixed
set of dark anchor greys, and is topped up with random colours. Near-white
colours are never generated.

Examples:
  # Print the default 100 colour palette
  swatch palette

  # Reproduce a palette from a phrase
  swatch palette --seed-text "autumn" --preview

  # JSON for scripting
  swatch palette --size 40 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPalette(cmd, opts, seeds)
		},
	}

	flags := cmd.Flags()
	seeds.register(flags)
	flags.IntVarP(&opts.size, "size", "n", colour.DefaultPaletteSize, "number of colours")
	flags.VarP(newFormatFlag(&opts.format, formatHex, formatHex, formatRGB, formatJSON), "format", "f", "output format (hex, rgb, json)")
	flags.BoolVarP(&opts.preview, "preview", "p", false, "show colour swatches")
	flags.IntVar(&opts.columns, "columns", 0, "swatches per row with --preview, 1 lists one colour per line (default fits the terminal)")

	return cmd
}

func (a *app) runPalette(cmd *cobra.Command, opts *paletteOptions, seeds *seedFlags) error {
	cfg := a.commandConfig(seeds, cmd.Flags())
	if cmd.Flags().Changed("size") {
		cfg.Palette.Size = opts.size
	}

	gen, err := a.newGenerator(cfg)
	if err != nil {
		return err
	}
	palette, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		data, err := palette.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	lines := make([]string, 0, palette.Len())
	switch columns := previewColumns(opts.columns, out); {
	case opts.preview && columns > 1:
		fmt.Fprint(out, colour.RenderPaletteGrid(palette, columns))
		return nil
	case opts.preview:
		for _, c := range palette.All() {
			lines = append(lines, colour.FormatColourWithPreview(c, listSwatchWidth))
		}
	default:
		for _, c := range palette.All() {
			text := c.Hex()
			if opts.format == formatRGB {
				text = c.String()
			}
			lines = append(lines, colour.ColourString(c, text))
		}
	}
	fmt.Fprintln(out, strings.Join(lines, "\n"))
	return nil
}

// previewColumns picks how many 10-character swatch cells fit per row.
func previewColumns(columns int, out any) int {
	if columns > 0 {
		return columns
	}
	if width := terminalWidth(out); width >= 10 {
		return width / 10
	}
	return 10
}
