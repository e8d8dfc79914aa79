// ABOUTME: Rest countdown timer between sets with start/pause/resume/stop.
// ABOUTME: Counts whole seconds; ticks are driven cooperatively or via Run.
package rest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultDuration is the rest period used when none is configured.
const DefaultDuration = 3 * time.Minute

var (
	// ErrNotRunning is returned by Pause when the timer is not counting down.
	ErrNotRunning = errors.New("rest timer is not running")
	// ErrNotPaused is returned by Resume when the timer is not paused.
	ErrNotPaused = errors.New("rest timer is not paused")
)

// TickerFactory produces a tick channel and a release func. Tests swap
// in a manual channel; the default wraps time.NewTicker.
type TickerFactory func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Snapshot is a point-in-time view of the timer state.
type Snapshot struct {
	Remaining int // seconds
	Running   bool
	Paused    bool
}

// Clock renders the remaining time as m:ss.
func (s Snapshot) Clock() string {
	return Format(s.Remaining)
}

// Format renders a second count as m:ss, e.g. "2:35" or "0:07".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Timer is a countdown for the rest period between sets. Starting while
// running restarts the countdown; reaching zero stops the timer but
// leaves the display at 0:00 until the user stops or a new set starts.
type Timer struct {
	mu          sync.Mutex
	remaining   int
	defaultSecs int
	running     bool
	paused      bool
	gen         uint64 // bumped on Start/Stop so stale ticks are no-ops

	newTicker TickerFactory
	onTick    func(Snapshot)
	onDone    func()
}

// Option configures a Timer.
type Option func(*Timer)

// WithDefault sets the duration used when Start is given no duration
// and the value Remaining resets to on user stop.
func WithDefault(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.defaultSecs = int(d / time.Second)
		}
	}
}

// WithTickerFactory replaces the wall-clock tick source.
func WithTickerFactory(f TickerFactory) Option {
	return func(t *Timer) {
		t.newTicker = f
	}
}

// New creates a stopped timer showing the default duration.
func New(opts ...Option) *Timer {
	t := &Timer{
		defaultSecs: int(DefaultDuration / time.Second),
		newTicker:   realTicker,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.remaining = t.defaultSecs
	return t
}

// OnTick registers a callback fired after every applied decrement.
// It runs outside the timer lock.
func (t *Timer) OnTick(fn func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// OnDone registers a callback fired when the countdown reaches zero.
func (t *Timer) OnDone(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onDone = fn
}

// Start begins a countdown of d, restarting any countdown already in
// progress. d <= 0 means the default duration.
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	secs := int(d / time.Second)
	if secs <= 0 {
		secs = t.defaultSecs
	}
	t.remaining = secs
	t.running = true
	t.paused = false
	t.gen++
}

// Pause freezes the countdown. Only legal while counting down.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running || t.paused {
		return ErrNotRunning
	}
	t.paused = true
	return nil
}

// Resume continues a paused countdown.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running || !t.paused {
		return ErrNotPaused
	}
	t.paused = false
	return nil
}

// Stop is the user stop: the countdown halts and Remaining resets to
// the default. Safe to call when already stopped.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.paused = false
	t.remaining = t.defaultSecs
	t.gen++
}

// Tick applies one 1-second decrement. No-op when stopped or paused,
// so a tick arriving after Stop has no residual effect.
func (t *Timer) Tick() {
	t.mu.Lock()
	gen := t.gen
	t.mu.Unlock()
	t.tick(gen)
}

// tick applies a decrement for the given start generation. Returns
// false once the countdown is over or superseded.
func (t *Timer) tick(gen uint64) bool {
	t.mu.Lock()
	if gen != t.gen || !t.running {
		t.mu.Unlock()
		return false
	}
	if t.paused {
		t.mu.Unlock()
		return true
	}
	t.remaining--
	done := t.remaining <= 0
	if done {
		// Auto-stop holds the display at 0:00. Only a user Stop or a
		// new Start moves it off zero.
		t.remaining = 0
		t.running = false
		t.paused = false
	}
	snap := Snapshot{Remaining: t.remaining, Running: t.running, Paused: t.paused}
	onTick, onDone := t.onTick, t.onDone
	t.mu.Unlock()

	if onTick != nil {
		onTick(snap)
	}
	if done && onDone != nil {
		onDone()
	}
	return !done
}

// Run drives the countdown from the wall clock at one tick per second
// until it finishes, is superseded, or ctx is canceled.
func (t *Timer) Run(ctx context.Context) {
	t.mu.Lock()
	gen := t.gen
	t.mu.Unlock()

	ch, release := t.newTicker(time.Second)
	defer release()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			if !t.tick(gen) {
				return
			}
		}
	}
}

// Remaining reports the seconds left on the countdown.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether a countdown is in progress (paused counts).
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Paused reports whether the countdown is frozen.
func (t *Timer) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// State returns a consistent snapshot of the timer.
func (t *Timer) State() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{Remaining: t.remaining, Running: t.running, Paused: t.paused}
}

// Default reports the configured default duration in seconds.
func (t *Timer) Default() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.defaultSecs
}
