package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns every preview into plain text.
var DisableColourOutput = false

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}
	return bgCode(c) + block + ansiReset
}

// ColourPreviewWithText returns a colour preview with text overlay.
// The text colour is black or white, whichever reads better on c.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	if DisableColourOutput {
		return displayText
	}

	return bgCode(c) + fgCode(LabelColour(c)) + displayText + ansiReset
}

// LabelColour returns black for light backgrounds and white for dark ones.
func LabelColour(c RGB) RGB {
	if Luminance(c) > 0.5 {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-6s %s", ColourPreview(rgb, width), label, rgb.Hex())
}

// ColourString returns a coloured string if colour output is enabled, plain text otherwise.
func ColourString(rgb RGB, text string) string {
	if DisableColourOutput {
		return text
	}
	return fgCode(rgb) + text + ansiReset
}

// RenderPaletteGrid lays the palette out as labelled swatches, columns per row.
func RenderPaletteGrid(p *Palette, columns int) string {
	if columns <= 0 {
		columns = 10
	}
	var sb strings.Builder
	for i, c := range p.All() {
		sb.WriteString(ColourPreviewWithText(c, c.Hex(), 9))
		if (i+1)%columns == 0 || i == p.Len()-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// RenderRamp renders one line per shade, lightest first.
func RenderRamp(r ShadeRamp) string {
	var sb strings.Builder
	for _, s := range r {
		sb.WriteString(FormatColourWithLabel(s.Colour, fmt.Sprint(s.Key), defaultWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}

func bgCode(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgCode(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
