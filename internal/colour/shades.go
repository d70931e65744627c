package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrUnknownShadeKey is returned when a shade key is not one of ShadeKeys.
	ErrUnknownShadeKey = errors.New("unknown shade key")

	// ErrInvalidShadeStep is returned for a negative or non-finite step.
	ErrInvalidShadeStep = errors.New("invalid shade step")
)

// DefaultShadeStep is the brighten/darken amount applied on either side of
// the base colour.
const DefaultShadeStep = 2.0

// labStep is the L* change per unit of step, on go-colorful's 0-1 L scale.
const labStep = 0.18

// ShadeKeys are the conventional step labels, lightest first.
var ShadeKeys = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Shade is one entry of a ramp.
type Shade struct {
	Key    int `json:"key"`
	Colour RGB `json:"-"`
}

// MarshalJSON emits the shade with its hex code alongside the RGB channels.
func (s Shade) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key int    `json:"key"`
		Hex string `json:"hex"`
		RGB RGB    `json:"rgb"`
	}{s.Key, s.Colour.Hex(), s.Colour})
}

// ShadeRamp is a 10-step tonal ramp ordered lightest to darkest.
type ShadeRamp [len(ShadeKeys)]Shade

// GenerateShades builds the ramp for base using DefaultShadeStep.
func GenerateShades(base RGB) ShadeRamp {
	return GenerateShadesStep(base, DefaultShadeStep)
}

// GenerateShadesStep builds the ramp for base. The base colour is brightened
// and darkened by step in CIE Lab, and the three-stop scale
// [light, base, dark] is sampled at evenly spaced positions with Lab
// interpolation. Results outside sRGB are clamped. A step rejected by
// ValidateShadeStep is replaced with DefaultShadeStep.
func GenerateShadesStep(base RGB, step float64) ShadeRamp {
	if ValidateShadeStep(step) != nil {
		step = DefaultShadeStep
	}
	b := base.colorful()
	stops := []colorful.Color{
		adjustLightness(b, step),
		b,
		adjustLightness(b, -step),
	}

	var ramp ShadeRamp
	last := float64(len(ShadeKeys) - 1)
	for i, key := range ShadeKeys {
		ramp[i] = Shade{
			Key:    key,
			Colour: fromColorful(sampleScale(stops, float64(i)/last)),
		}
	}
	return ramp
}

// ValidateShadeStep checks that step is finite and not negative.
func ValidateShadeStep(step float64) error {
	if math.IsNaN(step) || math.IsInf(step, 0) || step < 0 {
		return fmt.Errorf("%w: must be a finite number of at least 0, got %g", ErrInvalidShadeStep, step)
	}
	return nil
}

// adjustLightness shifts the L* of c by step units and clamps the result
// back into the sRGB gamut.
func adjustLightness(c colorful.Color, step float64) colorful.Color {
	l, a, b := c.Lab()
	return colorful.Lab(l+labStep*step, a, b).Clamped()
}

// sampleScale returns the colour at t (0-1) along evenly spaced stops,
// interpolating in Lab between neighbours.
func sampleScale(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	t = clamp01(t)
	pos := t * float64(len(stops)-1)
	idx := int(math.Floor(pos))
	if idx >= len(stops)-1 {
		idx = len(stops) - 2
	}
	return stops[idx].BlendLab(stops[idx+1], pos-float64(idx))
}

// Get returns the colour for key.
func (r ShadeRamp) Get(key int) (RGB, bool) {
	for _, s := range r {
		if s.Key == key {
			return s.Colour, true
		}
	}
	return RGB{}, false
}

// Hex returns the ramp colours as hex strings, lightest first.
func (r ShadeRamp) Hex() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = s.Colour.Hex()
	}
	return out
}

// ToJSON converts the ramp to JSON format.
func (r ShadeRamp) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r[:], "", "  ")
}

// String returns a human-readable representation of the ramp.
func (r ShadeRamp) String() string {
	var sb strings.Builder
	for _, s := range r {
		fmt.Fprintf(&sb, "  %3d: %s (%s)\n", s.Key, s.Colour.Hex(), s.Colour.String())
	}
	return sb.String()
}

// ParseShadeKey parses s and checks it is one of ShadeKeys.
func ParseShadeKey(s string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownShadeKey, s)
	}
	for _, k := range ShadeKeys {
		if k == key {
			return key, nil
		}
	}
	return 0, fmt.Errorf("%w: %d (valid: 50, 100-900 in steps of 100)", ErrUnknownShadeKey, key)
}
