// Package colour provides palette and shade ramp generation.
package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a valid hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB represents a color in RGB format.
// It is an immutable value and is always interchangeable with its hex string.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// colorful returns the colour as a go-colorful value in sRGB [0,1].
func (rgb RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// fromColorful converts a go-colorful value to RGB, clamping anything
// outside the sRGB gamut.
func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb", "rrggbb" or "#rgb" (case-insensitive).
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return fromColorful(c), nil
}

// MustParseHex is like ParseHex but panics on error.
// Only use it for compile-time constants.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}

// Palette is an ordered set of unique colours. Order is insertion order and
// carries no meaning beyond being stable for one generation call.
type Palette struct {
	Colours []RGB

	index map[RGB]struct{}
}

// NewPalette creates a new Palette with the given colours, dropping duplicates.
func NewPalette(colours []RGB) *Palette {
	p := &Palette{
		Colours: make([]RGB, 0, len(colours)),
		index:   make(map[RGB]struct{}, len(colours)),
	}
	for _, c := range colours {
		p.add(c)
	}
	return p
}

// add inserts c if not already present and reports whether it was added.
func (p *Palette) add(c RGB) bool {
	if p.index == nil {
		p.index = make(map[RGB]struct{}, len(p.Colours))
		for _, existing := range p.Colours {
			p.index[existing] = struct{}{}
		}
	}
	if _, ok := p.index[c]; ok {
		return false
	}
	p.index[c] = struct{}{}
	p.Colours = append(p.Colours, c)
	return true
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Contains reports whether c is in the palette.
func (p *Palette) Contains(c RGB) bool {
	if p.index != nil {
		_, ok := p.index[c]
		return ok
	}
	for _, existing := range p.Colours {
		if existing == c {
			return true
		}
	}
	return false
}

// Hex returns the palette colours as hex strings (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) Hex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{Hex: c.Hex(), RGB: c}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&sb, "  %3d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return sb.String()
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Colours) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}
