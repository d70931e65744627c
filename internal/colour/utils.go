package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultNearWhiteThreshold is the channel value every one of R, G and B must
// exceed for a colour to count as near-white.
const DefaultNearWhiteThreshold = 245

// IsNearWhite reports whether c is visually indistinguishable from white on
// a light background, using DefaultNearWhiteThreshold.
func IsNearWhite(c RGB) bool {
	return IsNearWhiteThreshold(c, DefaultNearWhiteThreshold)
}

// IsNearWhiteThreshold reports whether R, G and B are each strictly greater
// than threshold. A threshold of 255 rejects nothing; -1 rejects everything.
func IsNearWhiteThreshold(c RGB, threshold int) bool {
	return int(c.R) > threshold && int(c.G) > threshold && int(c.B) > threshold
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
// Channels are rounded to the nearest 8-bit value.
func HSLToRGB(h, s, l float64) RGB {
	return fromColorful(colorful.Hsl(math.Mod(h, 360), clamp01(s), clamp01(l)))
}

// ToHSL converts c to hue (0-360), saturation (0-1) and lightness (0-1).
func ToHSL(c RGB) (h, s, l float64) {
	return c.colorful().Hsl()
}

// LabLightness returns the CIE L* of c (0-100).
func LabLightness(c RGB) float64 {
	l, _, _ := c.colorful().Lab()
	return l * 100
}

// DistanceLab returns the Euclidean distance between a and b in CIE Lab,
// on go-colorful's 0-1 scale for L*.
func DistanceLab(a, b RGB) float64 {
	return a.colorful().DistanceLab(b.colorful())
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
