package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/spf13/cobra"
)

type shadesOptions struct {
	step    float64
	format  outputFormat
	preview bool
	copyKey string
}

func newShadesCmd(a *app) *cobra.Command {
	opts := &shadesOptions{}

	cmd := &cobra.Command{
		Use:   "shades <hex>",
		Short: "Show the shade ramp of a colour",
		Long: `Show the ten-step shade ramp of a colour, from 50 (lightest) to 900 (darkest).

The ramp is interpolated in CIE L*a*b* between a brightened and a darkened
copy of the colour, so key 500 sits close to the colour itself.

Examples:
  swatch shades "#3366cc"
  swatch shades 36c --format json
  swatch shades "#3366cc" --copy 700`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShades(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.step, "step", colour.DefaultShadeStep, "brighten/darken amount at the ends of the ramp")
	flags.VarP(newFormatFlag(&opts.format, formatTable, formatTable, formatHex, formatRGB, formatJSON), "format", "f", "output format (table, hex, rgb, json)")
	flags.BoolVarP(&opts.preview, "preview", "p", false, "add colour swatches to table output")
	flags.StringVar(&opts.copyKey, "copy", "", "copy the shade with this key (50-900) to the clipboard")

	return cmd
}

func (a *app) runShades(cmd *cobra.Command, hex string, opts *shadesOptions) error {
	base, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}

	step := a.config.Shades.Step
	if cmd.Flags().Changed("step") {
		step = opts.step
	}
	if err := colour.ValidateShadeStep(step); err != nil {
		return fmt.Errorf("shade step: %w", err)
	}

	var copyKey int
	if opts.copyKey != "" {
		if copyKey, err = colour.ParseShadeKey(opts.copyKey); err != nil {
			return err
		}
	}

	ramp := colour.GenerateShadesStep(base, step)
	a.logger.Debug("generated shades", "base", base.Hex(), "step", step)

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		data, err := ramp.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode shades: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case formatHex:
		for _, s := range ramp {
			fmt.Fprintln(out, colour.ColourString(s.Colour, s.Colour.Hex()))
		}
	case formatRGB:
		for _, s := range ramp {
			fmt.Fprintln(out, colour.ColourString(s.Colour, s.Colour.String()))
		}
	default:
		fmt.Fprint(out, shadeTable(ramp, opts.preview).Render())
	}

	if opts.copyKey == "" {
		return nil
	}
	c, _ := ramp.Get(copyKey)
	return a.copyText(cmd, a.config, c.Hex())
}

func shadeTable(ramp colour.ShadeRamp, preview bool) *Table {
	headers := []string{"Key", "Hex", "RGB"}
	if preview {
		headers = []string{"Key", "Swatch", "Hex", "RGB"}
	}

	table := NewTable(headers)
	for _, s := range ramp {
		row := []string{strconv.Itoa(s.Key), s.Colour.Hex(), s.Colour.String()}
		if preview {
			row = []string{strconv.Itoa(s.Key), colour.ColourPreview(s.Colour, 6), s.Colour.Hex(), s.Colour.String()}
		}
		table.AddRow(row)
	}
	return table
}
