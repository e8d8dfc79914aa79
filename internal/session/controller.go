// ABOUTME: Session controller: the state machine that owns the active workout.
// ABOUTME: Idle -> Active on start; finish appends a log, discard drops the copy.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	default:
		return "idle"
	}
}

// Appender is the history feed slice the controller needs to finish a
// session.
type Appender interface {
	Append(log *models.WorkoutLog) error
}

// RestTimer is the slice of the rest timer the set logger drives.
type RestTimer interface {
	Start(d time.Duration)
	Stop()
}

// Controller owns the single active session. All operations are atomic
// under one mutex; at most one session exists at a time.
type Controller struct {
	mu      sync.Mutex
	state   State
	session *models.ActiveSession

	history     Appender
	timer       RestTimer
	checkpoint  Checkpointer
	restPeriod  time.Duration
	requireBoth bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithCheckpoint persists the active session across process runs.
func WithCheckpoint(cp Checkpointer) Option {
	return func(c *Controller) {
		c.checkpoint = cp
	}
}

// WithRestDuration overrides the rest period started when a set is
// logged. Zero means the timer's own default.
func WithRestDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.restPeriod = d
	}
}

// WithRequireRepsAndWeight switches set completion to strict mode:
// both fields must be present instead of at least one.
func WithRequireRepsAndWeight(v bool) Option {
	return func(c *Controller) {
		c.requireBoth = v
	}
}

// NewController creates an idle controller. timer may be nil when no
// rest countdown is wanted (e.g. in the MCP server's status-only use).
func NewController(history Appender, timer RestTimer, opts ...Option) *Controller {
	c := &Controller{
		history: history,
		timer:   timer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start seeds a new active session from the template. Returns
// ErrSessionInProgress when one is already active; the running session
// is untouched.
func (c *Controller) Start(t *models.WorkoutTemplate) (*models.ActiveSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateActive {
		return nil, fmt.Errorf("start %q: %w", t.Name, ErrSessionInProgress)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	sess := models.NewSession(t)
	if c.checkpoint != nil {
		if err := c.checkpoint.Save(sess); err != nil {
			// Without the checkpoint a CLI session would vanish at
			// process exit, so a failed save fails the start.
			return nil, fmt.Errorf("save session checkpoint: %w", err)
		}
	}

	c.session = sess
	c.state = StateActive
	return sess.Clone(), nil
}

// Restore loads a checkpointed session from a previous process run.
// No-op when no checkpoint exists or none is configured.
func (c *Controller) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checkpoint == nil {
		return nil
	}
	if c.state == StateActive {
		return ErrSessionInProgress
	}

	sess, err := c.checkpoint.Load()
	if err != nil {
		return fmt.Errorf("load session checkpoint: %w", err)
	}
	if sess == nil {
		return nil
	}

	c.session = sess
	c.state = StateActive
	return nil
}

// State reports the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	return c.State() == StateActive
}

// Session returns a deep copy of the active session, or nil when idle.
// Mutating the copy never affects the controller's working state.
func (c *Controller) Session() *models.ActiveSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Clone()
}

// SetBodyWeight records the body weight on the active session.
func (c *Controller) SetBodyWeight(weight float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return ErrNoSession
	}
	if weight < 0 {
		return fmt.Errorf("body weight %.1f: %w", weight, ErrInvalidValue)
	}
	c.session.BodyWeight = &weight
	c.saveCheckpoint()
	return nil
}

// SetNotes replaces the session notes.
func (c *Controller) SetNotes(notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return ErrNoSession
	}
	c.session.Notes = notes
	c.saveCheckpoint()
	return nil
}

// Discard drops the active session without recording anything.
func (c *Controller) Discard() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return ErrNoSession
	}

	c.session = nil
	c.state = StateIdle
	if c.timer != nil {
		c.timer.Stop()
	}
	c.clearCheckpoint()
	return nil
}

// Finish closes the active session: builds the immutable log from the
// completed sets and appends it to history. On append failure the
// session stays active and untouched so the user can retry or keep
// logging.
func (c *Controller) Finish() (*models.WorkoutLog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return nil, ErrNoSession
	}

	log := models.NewLogFromSession(c.session, time.Now())
	if err := c.history.Append(log); err != nil {
		return nil, fmt.Errorf("finish workout: %w", err)
	}

	c.session = nil
	c.state = StateIdle
	if c.timer != nil {
		c.timer.Stop()
	}
	c.clearCheckpoint()
	return log, nil
}

// saveCheckpoint persists the working copy. The in-memory session
// stays authoritative, so mid-session save failures only warn.
// Callers hold the mutex.
func (c *Controller) saveCheckpoint() {
	if c.checkpoint == nil {
		return
	}
	if err := c.checkpoint.Save(c.session); err != nil {
		slog.Warn("session checkpoint save failed", "error", err)
	}
}

// clearCheckpoint removes the persisted copy after finish or discard.
// Callers hold the mutex.
func (c *Controller) clearCheckpoint() {
	if c.checkpoint == nil {
		return
	}
	if err := c.checkpoint.Clear(); err != nil {
		slog.Warn("session checkpoint clear failed", "error", err)
	}
}
