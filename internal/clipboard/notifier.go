package clipboard

import (
	"sync"
	"time"
)

// DefaultDuration is how long a confirmation stays visible.
const DefaultDuration = 1500 * time.Millisecond

// Notifier holds at most one transient confirmation message. A new message
// replaces the current one and restarts the timer, so only the latest
// confirmation is ever visible.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	message  string
	timer    *time.Timer
	gen      uint64
	onChange func(message string)
}

// NewNotifier creates a Notifier. A non-positive duration uses DefaultDuration.
func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration}
}

// Duration returns how long each message stays visible.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// SetOnChange registers fn to be called with the new message whenever it
// changes, including "" when it expires. fn runs without the lock held and
// may be called from a timer goroutine. A nil fn removes the callback.
func (n *Notifier) SetOnChange(fn func(message string)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Notify shows message, replacing any current one.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.message = message
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.duration, func() { n.expire(gen) })
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(message)
	}
}

// expire clears the message if it is still the one scheduled as gen.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.gen {
		n.mu.Unlock()
		return
	}
	n.message = ""
	n.timer = nil
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange("")
	}
}

// Current returns the visible message, or "" if none.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// Stop clears the message and cancels any pending timer.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	n.message = ""
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
