package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/prompt"
)

const (
	actionQuit = "quit"
	actionBack = "back"

	swatchWidth = 9
)

// Explore runs the interactive loop: pick a palette colour, view its ramp,
// pick shades to copy, go back, repeat. It returns nil when the user quits.
func (s *Session) Explore(ctx context.Context, p prompt.Prompter, out io.Writer) error {
	if err := s.Start(); err != nil {
		return err
	}

	// Redraw the open prompt whenever the confirmation appears or expires.
	s.clip.Notifier().SetOnChange(func(string) { p.Refresh() })
	defer s.clip.Notifier().SetOnChange(nil)

	fmt.Fprintln(out, titleStyle.Render("Colour Explorer"))
	fmt.Fprintln(out, hintStyle.Render("Pick a colour to see its shades. Pick a shade to copy its hex code."))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := p.Select("Colours", s.toastLine, s.paletteOptions())
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}
		if choice == actionQuit {
			return nil
		}

		index, err := strconv.Atoi(choice)
		if err != nil {
			return fmt.Errorf("unexpected palette choice %q", choice)
		}
		ramp, err := s.Select(index)
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, titleStyle.Render("Shades of "+s.base.Hex()))
		fmt.Fprint(out, colour.RenderRamp(ramp))

		if err := s.exploreShades(ctx, p); err != nil {
			return err
		}
	}
}

// exploreShades loops over the shade menu until the user goes back.
func (s *Session) exploreShades(ctx context.Context, p prompt.Prompter) error {
	defer s.Dismiss()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := p.Select("Shades", s.toastLine, s.shadeOptions())
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}
		if choice == actionBack {
			return nil
		}

		key, err := colour.ParseShadeKey(choice)
		if err != nil {
			return err
		}
		if err := s.CopyShade(key); err != nil {
			// Already shown as an error confirmation; keep the session alive.
			s.logger.Debug("copy failed", "key", key, "error", err)
		}
	}
}

// toastLine renders the current confirmation for a prompt description.
func (s *Session) toastLine() string {
	return renderToast(s.Toast())
}

func (s *Session) paletteOptions() []prompt.Option {
	opts := make([]prompt.Option, 0, s.palette.Len()+1)
	for i, c := range s.palette.All() {
		opts = append(opts, prompt.Option{
			Label: colour.ColourPreviewWithText(c, c.Hex(), swatchWidth),
			Value: strconv.Itoa(i),
		})
	}
	return append(opts, prompt.Option{Label: "Quit", Value: actionQuit})
}

func (s *Session) shadeOptions() []prompt.Option {
	opts := make([]prompt.Option, 0, len(s.ramp)+1)
	for _, shade := range s.ramp {
		opts = append(opts, prompt.Option{
			Label: colour.FormatColourWithLabel(shade.Colour, strconv.Itoa(shade.Key), swatchWidth),
			Value: strconv.Itoa(shade.Key),
		})
	}
	return append(opts, prompt.Option{Label: "Back", Value: actionBack})
}
