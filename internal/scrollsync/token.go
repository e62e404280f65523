// Package scrollsync mirrors scroll positions between the two panes
// of a comparison view without feedback loops.
//
// The pane that initiates a scroll holds an exclusive token
// for a short debounce window;
// scroll events from anyone else are dropped while it's held.
// Programmatic scrolls on the mirrored pane therefore never echo back.
package scrollsync

import (
	"sync"
	"time"
)

// DefaultWindow is how long a scroll source stays active
// after its last scroll event.
const DefaultWindow = 150 * time.Millisecond

// Token is a debounced mutual-exclusion token with two states:
// idle, or active with a single source.
//
// Acquire moves it to active and (re)arms a timer;
// the timer firing moves it back to idle.
// The zero value is not usable; use NewToken.
type Token struct {
	mu     sync.Mutex
	window time.Duration
	source string
	timer  *time.Timer
}

// NewToken builds an idle token with the given debounce window.
// A non-positive window falls back to [DefaultWindow].
func NewToken(window time.Duration) *Token {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Token{window: window}
}

// Acquire attempts to make source the active scroll source.
// It succeeds if the token is idle
// or already held by the same source,
// rearming the debounce timer either way.
func (t *Token) Acquire(source string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.source != "" && t.source != source {
		return false
	}

	t.source = source
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.window, t.expire)
	return true
}

// Holder reports the active source, or an empty string when idle.
func (t *Token) Holder() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source
}

// Release forces the token back to idle immediately.
func (t *Token) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.release()
}

func (t *Token) expire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.release()
}

func (t *Token) release() {
	t.source = ""
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
