package colour

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrGenerationExhausted is returned when a palette cannot be filled with
	// enough unique colours that pass the near-white predicate.
	ErrGenerationExhausted = errors.New("palette generation exhausted")

	// ErrInvalidOptions is returned by NewGenerator for unusable options.
	ErrInvalidOptions = errors.New("invalid generator options")
)

// DefaultAnchors are the neutral colours every palette contains.
var DefaultAnchors = []string{"#000000", "#1c1c1c", "#2f2f2f", "#4f4f4f", "#dcdcdc"}

const (
	DefaultPaletteSize       = 100
	DefaultVividCount        = 95
	DefaultSaturation        = 0.65
	DefaultLightness         = 0.50
	DefaultMaxRandomAttempts = 100000
)

// Fallback lightness offsets walked when random fill runs out of attempts.
var fallbackLightnessOffsets = []float64{0, -0.15, 0.15, -0.3, 0.3, -0.4, 0.4}

// Odd stride through the 24-bit cube; being coprime with 2^24 it visits
// every value exactly once.
const cubeStride = 0x9e3779

// GeneratorOptions configures palette generation.
type GeneratorOptions struct {
	Size               int
	VividCount         int
	Saturation         float64
	Lightness          float64
	NearWhiteThreshold int
	Anchors            []string
	MaxRandomAttempts  int
}

// DefaultGeneratorOptions returns the options that reproduce the classic
// 100-colour palette.
func DefaultGeneratorOptions() GeneratorOptions {
	anchors := make([]string, len(DefaultAnchors))
	copy(anchors, DefaultAnchors)
	return GeneratorOptions{
		Size:               DefaultPaletteSize,
		VividCount:         DefaultVividCount,
		Saturation:         DefaultSaturation,
		Lightness:          DefaultLightness,
		NearWhiteThreshold: DefaultNearWhiteThreshold,
		Anchors:            anchors,
		MaxRandomAttempts:  DefaultMaxRandomAttempts,
	}
}

// Validate checks the options and returns the parsed anchors.
func (o GeneratorOptions) Validate() ([]RGB, error) {
	if o.Size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidOptions, o.Size)
	}
	if o.VividCount < 0 {
		return nil, fmt.Errorf("%w: vivid count must not be negative, got %d", ErrInvalidOptions, o.VividCount)
	}
	if o.Saturation < 0 || o.Saturation > 1 {
		return nil, fmt.Errorf("%w: saturation must be within [0,1], got %g", ErrInvalidOptions, o.Saturation)
	}
	if o.Lightness < 0 || o.Lightness > 1 {
		return nil, fmt.Errorf("%w: lightness must be within [0,1], got %g", ErrInvalidOptions, o.Lightness)
	}
	if o.NearWhiteThreshold < -1 || o.NearWhiteThreshold > 255 {
		return nil, fmt.Errorf("%w: near-white threshold must be within [-1,255], got %d", ErrInvalidOptions, o.NearWhiteThreshold)
	}
	if o.MaxRandomAttempts < 0 {
		return nil, fmt.Errorf("%w: max random attempts must not be negative, got %d", ErrInvalidOptions, o.MaxRandomAttempts)
	}

	anchors := NewPalette(nil)
	for _, a := range o.Anchors {
		rgb, err := ParseHex(a)
		if err != nil {
			return nil, fmt.Errorf("%w: anchor: %w", ErrInvalidOptions, err)
		}
		anchors.add(rgb)
	}
	if anchors.Len() > o.Size {
		return nil, fmt.Errorf("%w: %d anchors do not fit in a palette of %d", ErrInvalidOptions, anchors.Len(), o.Size)
	}
	return anchors.Colours, nil
}

// Generator produces palettes. It is not safe for concurrent use because it
// owns its random source.
type Generator struct {
	opts    GeneratorOptions
	anchors []RGB
	rng     *rand.Rand
	logger  hclog.Logger
}

// NewGenerator validates opts and returns a Generator. A nil rng is replaced
// by a freshly seeded source and a nil logger discards output.
func NewGenerator(opts GeneratorOptions, rng *rand.Rand, logger hclog.Logger) (*Generator, error) {
	anchors, err := opts.Validate()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // #nosec G404 -- palette colours are not security sensitive
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{
		opts:    opts,
		anchors: anchors,
		rng:     rng,
		logger:  logger,
	}, nil
}

// Options returns the generator's options.
func (g *Generator) Options() GeneratorOptions {
	return g.opts
}

// Generate builds a palette of exactly Size unique colours, none of which is
// near-white apart from any configured anchors.
func (g *Generator) Generate() (*Palette, error) {
	size := g.opts.Size
	p := &Palette{
		Colours: make([]RGB, 0, size),
		index:   make(map[RGB]struct{}, size),
	}

	// Leave room so the anchors always make it in.
	sweepLimit := size - g.countMissing(p, g.anchors)
	g.sweep(p, sweepLimit, 0, 0)
	g.logger.Debug("hue sweep complete", "colours", p.Len(), "vivid_count", g.opts.VividCount)

	for _, a := range g.anchors {
		p.add(a)
	}

	attempts := 0
	for p.Len() < size && attempts < g.opts.MaxRandomAttempts {
		attempts++
		c := g.randomColour()
		if g.nearWhite(c) {
			continue
		}
		p.add(c)
	}
	g.logger.Debug("random fill complete", "colours", p.Len(), "attempts", attempts)

	if p.Len() < size {
		g.logger.Warn("random fill budget exhausted, using deterministic fallback",
			"colours", p.Len(), "size", size, "attempts", attempts)
		g.fallback(p)
	}

	if p.Len() < size {
		return nil, fmt.Errorf("%w: collected %d of %d colours", ErrGenerationExhausted, p.Len(), size)
	}
	return p, nil
}

// sweep steps the hue evenly around the circle at the configured saturation
// and lightness, adding colours until p reaches limit.
func (g *Generator) sweep(p *Palette, limit int, hueOffset, lightnessOffset float64) {
	count := g.opts.VividCount
	if count == 0 {
		return
	}
	step := 360.0 / float64(count)
	lightness := clamp01(g.opts.Lightness + lightnessOffset)
	for i := 0; i < count && p.Len() < limit; i++ {
		c := HSLToRGB(float64(i)*step+hueOffset*step, g.opts.Saturation, lightness)
		if g.nearWhite(c) {
			continue
		}
		p.add(c)
	}
}

// fallback fills p deterministically: perturbed hue sweeps first, then a
// full walk of the 24-bit cube.
func (g *Generator) fallback(p *Palette) {
	size := g.opts.Size
	for _, dl := range fallbackLightnessOffsets {
		for _, dh := range []float64{0.5, 0.25, 0.75} {
			if p.Len() >= size {
				return
			}
			g.sweep(p, size, dh, dl)
		}
	}

	v := uint32(0)
	for range 1 << 24 {
		if p.Len() >= size {
			return
		}
		v = (v + cubeStride) & 0xffffff
		c := RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
		if g.nearWhite(c) {
			continue
		}
		p.add(c)
	}
}

// randomColour draws a uniformly random 24-bit colour.
func (g *Generator) randomColour() RGB {
	v := g.rng.Uint32() & 0xffffff
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (g *Generator) nearWhite(c RGB) bool {
	return IsNearWhiteThreshold(c, g.opts.NearWhiteThreshold)
}

// countMissing returns how many of colours are not yet in p.
func (g *Generator) countMissing(p *Palette, colours []RGB) int {
	n := 0
	for _, c := range colours {
		if !p.Contains(c) {
			n++
		}
	}
	return n
}

// GeneratePalette generates a palette with the default options.
func GeneratePalette(rng *rand.Rand) (*Palette, error) {
	g, err := NewGenerator(DefaultGeneratorOptions(), rng, nil)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}
