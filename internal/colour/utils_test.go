package colour

import (
	"math"
	"testing"
)

func TestIsNearWhite(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{hex: "#ffffff", want: true},
		{hex: "#000000", want: false},
		{hex: "#f5f5f5", want: false}, // 245 is not strictly greater
		{hex: "#f6f6f6", want: true},
		{hex: "#f6f6f5", want: false},
		{hex: "#fffff5", want: false},
		{hex: "#dcdcdc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := IsNearWhite(MustParseHex(tt.hex)); got != tt.want {
				t.Errorf("IsNearWhite(%s) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestIsNearWhiteThreshold(t *testing.T) {
	tests := []struct {
		name      string
		colour    RGB
		threshold int
		want      bool
	}{
		{name: "255 rejects nothing", colour: RGB{R: 255, G: 255, B: 255}, threshold: 255, want: false},
		{name: "-1 rejects black", colour: RGB{}, threshold: -1, want: true},
		{name: "lower threshold", colour: RGB{R: 230, G: 231, B: 232}, threshold: 220, want: true},
		{name: "one channel below", colour: RGB{R: 230, G: 210, B: 232}, threshold: 220, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNearWhiteThreshold(tt.colour, tt.threshold); got != tt.want {
				t.Errorf("IsNearWhiteThreshold(%s, %d) = %v, want %v", tt.colour.Hex(), tt.threshold, got, tt.want)
			}
		})
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(RGB{}); got != 0 {
		t.Errorf("Luminance(black) = %f, want 0", got)
	}
	if got := Luminance(RGB{R: 255, G: 255, B: 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %f, want 1", got)
	}
	if Luminance(green) <= Luminance(red) {
		t.Error("green should be more luminous than red")
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "red", h: 0, s: 1, l: 0.5, want: "#ff0000"},
		{name: "green", h: 120, s: 1, l: 0.5, want: "#00ff00"},
		{name: "blue", h: 240, s: 1, l: 0.5, want: "#0000ff"},
		{name: "full turn wraps", h: 360, s: 1, l: 0.5, want: "#ff0000"},
		{name: "grey", h: 0, s: 0, l: 0.5, want: "#808080"},
		{name: "sweep start", h: 0, s: 0.65, l: 0.5, want: "#d22d2d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l).Hex(); got != tt.want {
				t.Errorf("HSLToRGB(%g, %g, %g) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestToHSL(t *testing.T) {
	h, s, l := ToHSL(blue)
	if math.Abs(h-240) > 1e-6 || math.Abs(s-1) > 1e-6 || math.Abs(l-0.5) > 1e-6 {
		t.Errorf("ToHSL(blue) = (%f, %f, %f), want (240, 1, 0.5)", h, s, l)
	}
}

func TestLabLightness(t *testing.T) {
	if got := LabLightness(RGB{}); math.Abs(got) > 1e-6 {
		t.Errorf("LabLightness(black) = %f, want 0", got)
	}
	if got := LabLightness(RGB{R: 255, G: 255, B: 255}); math.Abs(got-100) > 0.01 {
		t.Errorf("LabLightness(white) = %f, want 100", got)
	}
}
