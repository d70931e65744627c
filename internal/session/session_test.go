package session

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/prompt"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func newTestSession(t *testing.T, fc *fakeClipboard) *Session {
	t.Helper()
	return newTestSessionWithToast(t, fc, time.Minute)
}

func newTestSessionWithToast(t *testing.T, fc *fakeClipboard, toast time.Duration) *Session {
	t.Helper()
	gen, err := colour.NewGenerator(colour.DefaultGeneratorOptions(), rand.New(rand.NewPCG(1, 2)), nil)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	clip := clipboard.New(fc.write, clipboard.NewNotifier(toast), nil)
	s := New(gen, clip, colour.DefaultShadeStep, nil)
	t.Cleanup(s.Close)
	return s
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{})

	if s.Palette() != nil {
		t.Fatal("Palette() should be nil before Start")
	}
	if _, err := s.Select(0); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Select() before Start error = %v, want ErrNotStarted", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	first := s.Palette()
	if first.Len() != colour.DefaultPaletteSize {
		t.Errorf("palette has %d colours, want %d", first.Len(), colour.DefaultPaletteSize)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	if s.Palette() != first {
		t.Error("second Start() replaced the palette")
	}
}

func TestSessionSelectReplacesRamp(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{})
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, _, ok := s.Ramp(); ok {
		t.Fatal("Ramp() active before any selection")
	}

	first, err := s.Select(0)
	if err != nil {
		t.Fatalf("Select(0) error = %v", err)
	}
	second, err := s.Select(1)
	if err != nil {
		t.Fatalf("Select(1) error = %v", err)
	}
	if first == second {
		t.Error("selecting another colour did not change the ramp")
	}

	ramp, base, ok := s.Ramp()
	if !ok || ramp != second {
		t.Error("Ramp() does not hold the latest selection")
	}
	if want, _ := s.Palette().Get(1); base != want {
		t.Errorf("Ramp() base = %s, want %s", base.Hex(), want.Hex())
	}

	if _, err := s.Select(1000); err == nil {
		t.Error("Select(1000) should fail")
	}
}

func TestSessionDismiss(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{})
	s.SelectColour(colour.MustParseHex("#3366cc"))
	s.Dismiss()

	if _, _, ok := s.Ramp(); ok {
		t.Error("Ramp() still active after Dismiss")
	}
	if err := s.CopyShade(500); !errors.Is(err, ErrNoSelection) {
		t.Errorf("CopyShade() after Dismiss error = %v, want ErrNoSelection", err)
	}
}

func TestSessionCopyShade(t *testing.T) {
	fc := &fakeClipboard{}
	s := newTestSession(t, fc)
	ramp := s.SelectColour(colour.MustParseHex("#3366cc"))

	if err := s.CopyShade(700); err != nil {
		t.Fatalf("CopyShade(700) error = %v", err)
	}
	want := ramp[7].Colour.Hex()
	if len(fc.copied) != 1 || fc.copied[0] != want {
		t.Errorf("copied %v, want [%s]", fc.copied, want)
	}
	if got := s.Toast(); got != "Copied "+want {
		t.Errorf("Toast() = %q", got)
	}

	if err := s.CopyShade(750); !errors.Is(err, colour.ErrUnknownShadeKey) {
		t.Errorf("CopyShade(750) error = %v, want ErrUnknownShadeKey", err)
	}
}

type scriptedPrompter struct {
	answers      []string
	titles       []string
	descriptions []string
	refreshes    atomic.Int32

	// onSelect, if set, runs while prompt n (0-based) is open.
	onSelect func(n int, description func() string)
}

func (p *scriptedPrompter) Select(title string, description func() string, options []prompt.Option) (string, error) {
	if p.onSelect != nil {
		p.onSelect(len(p.titles), description)
	}
	p.titles = append(p.titles, title)
	p.descriptions = append(p.descriptions, description())
	if len(p.answers) == 0 {
		return "", prompt.ErrAborted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	for _, o := range options {
		if o.Value == answer {
			return answer, nil
		}
	}
	return "", errors.New("answer " + answer + " not offered")
}

func (p *scriptedPrompter) Refresh() {
	p.refreshes.Add(1)
}

func TestExplore(t *testing.T) {
	fc := &fakeClipboard{}
	s := newTestSession(t, fc)
	p := &scriptedPrompter{answers: []string{"0", "50", "900", "back", "3", "back", "quit"}}

	var out bytes.Buffer
	if err := s.Explore(context.Background(), p, &out); err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	wantTitles := []string{"Colours", "Shades", "Shades", "Shades", "Colours", "Shades", "Colours"}
	if strings.Join(p.titles, ",") != strings.Join(wantTitles, ",") {
		t.Errorf("prompt titles = %v, want %v", p.titles, wantTitles)
	}

	base, _ := s.Palette().Get(0)
	ramp := colour.GenerateShades(base)
	want := []string{ramp[0].Colour.Hex(), ramp[9].Colour.Hex()}
	if len(fc.copied) != 2 || fc.copied[0] != want[0] || fc.copied[1] != want[1] {
		t.Errorf("copied %v, want %v", fc.copied, want)
	}

	// The confirmation of the first copy is shown on the next prompt.
	if !strings.Contains(p.descriptions[2], "Copied "+want[0]) {
		t.Errorf("third prompt description = %q, want confirmation", p.descriptions[2])
	}

	if !strings.Contains(out.String(), "Shades of "+base.Hex()) {
		t.Errorf("output missing ramp heading:\n%s", out.String())
	}
	if _, _, ok := s.Ramp(); ok {
		t.Error("ramp still active after leaving the shade menu")
	}
}

func TestExploreConfirmationClearsWhilePromptOpen(t *testing.T) {
	fc := &fakeClipboard{}
	s := newTestSessionWithToast(t, fc, 30*time.Millisecond)

	var shown, after string
	p := &scriptedPrompter{answers: []string{"0", "50", "back", "quit"}}
	p.onSelect = func(n int, description func() string) {
		if n != 2 {
			return
		}
		// Prompt 2 opens right after the copy: the confirmation is visible,
		// then expires and the open prompt is asked to redraw.
		shown = description()
		deadline := time.Now().Add(2 * time.Second)
		for p.refreshes.Load() < 2 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		after = description()
	}

	if err := s.Explore(context.Background(), p, &bytes.Buffer{}); err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	if !strings.Contains(shown, "Copied "+fc.copied[0]) {
		t.Errorf("description when prompt opened = %q, want confirmation", shown)
	}
	if got := p.refreshes.Load(); got < 2 {
		t.Fatalf("prompt refreshed %d times, want at least 2 (copy and expiry)", got)
	}
	if after != "" {
		t.Errorf("description after expiry = %q, want empty", after)
	}
}

func TestExploreDetachesRefresh(t *testing.T) {
	fc := &fakeClipboard{}
	s := newTestSession(t, fc)
	p := &scriptedPrompter{answers: []string{"quit"}}

	if err := s.Explore(context.Background(), p, &bytes.Buffer{}); err != nil {
		t.Fatalf("Explore() error = %v", err)
	}
	before := p.refreshes.Load()
	s.clip.Notifier().Notify("later")
	if got := p.refreshes.Load(); got != before {
		t.Errorf("prompt refreshed after Explore returned")
	}
}

func TestExploreAbortQuits(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{})
	p := &scriptedPrompter{}

	if err := s.Explore(context.Background(), p, &bytes.Buffer{}); err != nil {
		t.Errorf("Explore() error = %v, want nil on abort", err)
	}
}

func TestExploreCopyFailureKeepsGoing(t *testing.T) {
	fc := &fakeClipboard{err: errors.New("no clipboard")}
	s := newTestSession(t, fc)
	p := &scriptedPrompter{answers: []string{"1", "500", "back", "quit"}}

	if err := s.Explore(context.Background(), p, &bytes.Buffer{}); err != nil {
		t.Fatalf("Explore() error = %v", err)
	}
	if !strings.Contains(p.descriptions[2], "Copy failed: no clipboard") {
		t.Errorf("description after failed copy = %q", p.descriptions[2])
	}
}

func TestExploreNonInteractive(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{})
	err := s.Explore(context.Background(), &prompt.NoopPrompter{}, &bytes.Buffer{})
	if !errors.Is(err, prompt.ErrNonInteractive) {
		t.Errorf("Explore() error = %v, want ErrNonInteractive", err)
	}
}

func TestExploreCancelled(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Explore(ctx, &scriptedPrompter{}, &bytes.Buffer{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Explore() error = %v, want context.Canceled", err)
	}
}
