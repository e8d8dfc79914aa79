// ABOUTME: Sentinel errors for the session controller and set logger.
// ABOUTME: Callers match these with errors.Is to branch on failure kind.
package session

import "errors"

var (
	// ErrSessionInProgress is returned by Start when a session is already active.
	ErrSessionInProgress = errors.New("a workout session is already in progress")

	// ErrNoSession is returned by operations that require an active session.
	ErrNoSession = errors.New("no workout session in progress")

	// ErrIndexOutOfRange is returned for bad exercise or set indexes.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSetCompleted is returned when editing a set that was already logged.
	ErrSetCompleted = errors.New("set is already completed")

	// ErrEmptySet is returned when completing a set with neither reps nor weight.
	ErrEmptySet = errors.New("set has no reps or weight logged")

	// ErrIncompleteSet is returned in strict mode when completing a set
	// that has only one of reps and weight.
	ErrIncompleteSet = errors.New("set needs both reps and weight")

	// ErrInvalidValue is returned for negative reps or weight.
	ErrInvalidValue = errors.New("reps and weight must not be negative")

	// ErrUnknownField is returned by UpdateSetField for an unknown field name.
	ErrUnknownField = errors.New("unknown set field")
)
