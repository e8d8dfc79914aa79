// ABOUTME: Set logger: field edits, set completion, and set appends on the
// ABOUTME: active session. Completing a set starts the rest countdown.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// Field names a LoggedSet field for text-based edits.
type Field string

const (
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
)

// SetReps sets or clears the rep count of an uncompleted set. nil
// clears the field back to empty.
func (c *Controller) SetReps(exIdx, setIdx int, reps *int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, err := c.editableSet(exIdx, setIdx)
	if err != nil {
		return err
	}
	if reps != nil && *reps < 0 {
		return fmt.Errorf("reps %d: %w", *reps, ErrInvalidValue)
	}
	if reps == nil {
		set.Reps = nil
	} else {
		r := *reps
		set.Reps = &r
	}
	c.saveCheckpoint()
	return nil
}

// SetWeight sets or clears the weight of an uncompleted set. nil
// clears the field back to empty.
func (c *Controller) SetWeight(exIdx, setIdx int, weight *float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, err := c.editableSet(exIdx, setIdx)
	if err != nil {
		return err
	}
	if weight != nil && *weight < 0 {
		return fmt.Errorf("weight %.1f: %w", *weight, ErrInvalidValue)
	}
	if weight == nil {
		set.Weight = nil
	} else {
		w := *weight
		set.Weight = &w
	}
	c.saveCheckpoint()
	return nil
}

// UpdateSetField applies a text field edit the way a UI input would:
// an empty value clears the field, anything else must parse.
func (c *Controller) UpdateSetField(exIdx, setIdx int, field Field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldReps:
		if value == "" {
			return c.SetReps(exIdx, setIdx, nil)
		}
		reps, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse reps %q: %w", value, err)
		}
		return c.SetReps(exIdx, setIdx, &reps)
	case FieldWeight:
		if value == "" {
			return c.SetWeight(exIdx, setIdx, nil)
		}
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parse weight %q: %w", value, err)
		}
		return c.SetWeight(exIdx, setIdx, &weight)
	default:
		return fmt.Errorf("%q: %w", string(field), ErrUnknownField)
	}
}

// LogSet marks a set completed and (re)starts the rest countdown.
// Logging an already-completed set is a no-op: nothing changes and the
// countdown is not restarted.
func (c *Controller) LogSet(exIdx, setIdx int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return ErrNoSession
	}
	set, err := c.setAt(exIdx, setIdx)
	if err != nil {
		return err
	}
	if set.Completed {
		return nil
	}

	hasReps := set.Reps != nil
	hasWeight := set.Weight != nil
	if !hasReps && !hasWeight {
		return fmt.Errorf("exercise %d set %d: %w", exIdx, setIdx, ErrEmptySet)
	}
	if c.requireBoth && !(hasReps && hasWeight) {
		return fmt.Errorf("exercise %d set %d: %w", exIdx, setIdx, ErrIncompleteSet)
	}

	set.Completed = true
	if c.timer != nil {
		c.timer.Start(c.restPeriod)
	}
	c.saveCheckpoint()
	return nil
}

// AddSet appends one empty set to the exercise and returns its index.
// There is no upper bound; target sets only seed the initial count.
func (c *Controller) AddSet(exIdx int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return 0, ErrNoSession
	}
	if exIdx < 0 || exIdx >= len(c.session.Exercises) {
		return 0, fmt.Errorf("exercise %d: %w", exIdx, ErrIndexOutOfRange)
	}

	ex := &c.session.Exercises[exIdx]
	ex.Sets = append(ex.Sets, models.LoggedSet{})
	c.saveCheckpoint()
	return len(ex.Sets) - 1, nil
}

// setAt returns the addressed set. Callers hold the mutex.
func (c *Controller) setAt(exIdx, setIdx int) (*models.LoggedSet, error) {
	if exIdx < 0 || exIdx >= len(c.session.Exercises) {
		return nil, fmt.Errorf("exercise %d: %w", exIdx, ErrIndexOutOfRange)
	}
	ex := &c.session.Exercises[exIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return nil, fmt.Errorf("exercise %d set %d: %w", exIdx, setIdx, ErrIndexOutOfRange)
	}
	return &ex.Sets[setIdx], nil
}

// editableSet returns the addressed set if it can still be edited.
// Callers hold the mutex.
func (c *Controller) editableSet(exIdx, setIdx int) (*models.LoggedSet, error) {
	if c.state != StateActive {
		return nil, ErrNoSession
	}
	set, err := c.setAt(exIdx, setIdx)
	if err != nil {
		return nil, err
	}
	if set.Completed {
		return nil, fmt.Errorf("exercise %d set %d: %w", exIdx, setIdx, ErrSetCompleted)
	}
	return set, nil
}
