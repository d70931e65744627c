// Package session owns the display state of an explore session: the active
// palette, the active shade ramp and the current copy confirmation.
package session

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/colour"
)

var (
	// ErrNotStarted is returned when the palette has not been generated yet.
	ErrNotStarted = errors.New("session not started")

	// ErrNoSelection is returned when copying a shade with no active ramp.
	ErrNoSelection = errors.New("no colour selected")
)

// Session is single-owner UI state. It is not safe for concurrent use,
// apart from the clipboard notifier which manages its own timer.
type Session struct {
	gen    *colour.Generator
	clip   *clipboard.Clipboard
	step   float64
	logger hclog.Logger

	palette *colour.Palette
	base    colour.RGB
	ramp    colour.ShadeRamp
	hasRamp bool
}

// New creates a Session. step is the shade ramp brighten/darken amount.
func New(gen *colour.Generator, clip *clipboard.Clipboard, step float64, logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Session{gen: gen, clip: clip, step: step, logger: logger}
}

// Start generates the session palette. It runs once; later calls are no-ops.
func (s *Session) Start() error {
	if s.palette != nil {
		return nil
	}
	p, err := s.gen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}
	s.palette = p
	s.logger.Debug("session started", "colours", p.Len())
	return nil
}

// Palette returns the session palette, or nil before Start.
func (s *Session) Palette() *colour.Palette {
	return s.palette
}

// Select replaces the active ramp with one built from palette entry index.
func (s *Session) Select(index int) (colour.ShadeRamp, error) {
	if s.palette == nil {
		return colour.ShadeRamp{}, ErrNotStarted
	}
	c, err := s.palette.Get(index)
	if err != nil {
		return colour.ShadeRamp{}, err
	}
	return s.SelectColour(c), nil
}

// SelectColour replaces the active ramp with one built from c.
func (s *Session) SelectColour(c colour.RGB) colour.ShadeRamp {
	s.base = c
	s.ramp = colour.GenerateShadesStep(c, s.step)
	s.hasRamp = true
	s.logger.Debug("selected colour", "hex", c.Hex())
	return s.ramp
}

// Ramp returns the active ramp and the colour it was built from.
func (s *Session) Ramp() (colour.ShadeRamp, colour.RGB, bool) {
	return s.ramp, s.base, s.hasRamp
}

// Dismiss discards the active ramp.
func (s *Session) Dismiss() {
	s.ramp = colour.ShadeRamp{}
	s.base = colour.RGB{}
	s.hasRamp = false
}

// CopyShade copies the hex code of the active ramp's key shade.
func (s *Session) CopyShade(key int) error {
	if !s.hasRamp {
		return ErrNoSelection
	}
	c, ok := s.ramp.Get(key)
	if !ok {
		return fmt.Errorf("%w: %d", colour.ErrUnknownShadeKey, key)
	}
	return s.clip.Copy(c.Hex())
}

// Toast returns the visible copy confirmation, or "".
func (s *Session) Toast() string {
	return s.clip.Notifier().Current()
}

// Close clears any pending confirmation.
func (s *Session) Close() {
	s.clip.Notifier().Stop()
}
