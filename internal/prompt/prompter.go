// Package prompt provides interactive selection for the explore session.
package prompt

import "errors"

var (
	// ErrNonInteractive is returned when prompting in non-interactive mode.
	ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

	// ErrAborted is returned when the user cancels a prompt.
	ErrAborted = errors.New("prompt aborted")
)

// Option is one selectable entry. Label is shown, Value is returned.
type Option struct {
	Label string
	Value string
}

// Prompter defines the interface for interactive user prompts.
type Prompter interface {
	// Select presents options and returns the selected value. description
	// may be nil; otherwise it is read when the prompt opens and again on
	// every Refresh while it is open.
	Select(title string, description func() string, options []Option) (string, error)

	// Refresh redraws the description of the open prompt, if any. It is safe
	// to call from any goroutine.
	Refresh()
}

// NoopPrompter returns errors for all prompts (non-interactive mode).
type NoopPrompter struct{}

func (p *NoopPrompter) Select(title string, description func() string, options []Option) (string, error) {
	return "", ErrNonInteractive
}

func (p *NoopPrompter) Refresh() {}
