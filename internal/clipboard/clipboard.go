// Package clipboard copies colour codes to the system clipboard and shows a
// short-lived confirmation.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hashicorp/go-hclog"
)

// Writer places text on a clipboard.
type Writer func(text string) error

// SystemWriter writes to the OS clipboard.
func SystemWriter(text string) error {
	return clipboard.WriteAll(text)
}

// Supported reports whether a system clipboard utility is available.
func Supported() bool {
	return !clipboard.Unsupported
}

// Clipboard copies text and reports the outcome through a Notifier.
type Clipboard struct {
	write    Writer
	notifier *Notifier
	logger   hclog.Logger
}

// New creates a Clipboard. A nil write uses SystemWriter, a nil notifier
// uses one with DefaultDuration and a nil logger discards output.
func New(write Writer, notifier *Notifier, logger hclog.Logger) *Clipboard {
	if write == nil {
		write = SystemWriter
	}
	if notifier == nil {
		notifier = NewNotifier(DefaultDuration)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Clipboard{write: write, notifier: notifier, logger: logger}
}

// Notifier returns the confirmation holder.
func (c *Clipboard) Notifier() *Notifier {
	return c.notifier
}

// Copy places text on the clipboard. Failure is reported as a visible error
// confirmation and returned; it never panics.
func (c *Clipboard) Copy(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write panicked: %v", r)
			c.fail(text, err)
		}
	}()

	if werr := c.write(text); werr != nil {
		c.fail(text, werr)
		return fmt.Errorf("failed to copy %q: %w", text, werr)
	}

	c.logger.Debug("copied to clipboard", "text", text)
	c.notifier.Notify("Copied " + text)
	return nil
}

func (c *Clipboard) fail(text string, err error) {
	c.logger.Warn("clipboard write failed", "text", text, "error", err)
	c.notifier.Notify("Copy failed: " + err.Error())
}
