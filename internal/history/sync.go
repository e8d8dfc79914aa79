// ABOUTME: History feed: appends finished workout logs and pushes the full
// ABOUTME: log list to subscribers on every change, most recent first.
package history

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// Store is the slice of the storage backend the feed needs. ListLogs
// returns logs most recent first (by start time).
type Store interface {
	PutLog(log *models.WorkoutLog) error
	ListLogs(limit int) ([]*models.WorkoutLog, error)
}

// Syncer appends finished logs to the store and feeds the full log set
// to subscribers: once on subscribe, then after every change.
type Syncer struct {
	mu     sync.Mutex
	store  Store
	subs   map[int]func([]*models.WorkoutLog)
	nextID int
}

// NewSyncer creates a feed over the given store.
func NewSyncer(store Store) *Syncer {
	return &Syncer{
		store: store,
		subs:  make(map[int]func([]*models.WorkoutLog)),
	}
}

// Append persists a finished log and notifies subscribers. A zero log
// ID is assigned here. On store failure nothing is notified and the
// wrapped error is returned so the caller can retry.
func (s *Syncer) Append(log *models.WorkoutLog) error {
	if log == nil {
		return fmt.Errorf("append: nil log")
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if err := s.store.PutLog(log); err != nil {
		return fmt.Errorf("append workout log: %w", err)
	}
	if err := s.notify(); err != nil {
		// The log is saved; only the push failed. Subscribers catch up
		// on the next change or an explicit Refresh.
		slog.Warn("history push after append failed", "error", err)
	}
	return nil
}

// Logs returns the stored logs, most recent first. limit 0 means all.
func (s *Syncer) Logs(limit int) ([]*models.WorkoutLog, error) {
	return s.store.ListLogs(limit)
}

// Subscribe registers fn and immediately pushes the current log set to
// it. The returned cancel removes the subscription; calling it more
// than once is safe.
func (s *Syncer) Subscribe(fn func([]*models.WorkoutLog)) (func(), error) {
	logs, err := s.store.ListLogs(0)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	fn(cloneLogs(logs))

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}, nil
}

// Refresh re-reads the store and pushes to all subscribers. Call after
// an external change, e.g. a cloud sync pulled new logs.
func (s *Syncer) Refresh() error {
	return s.notify()
}

// notify reads the current log set and pushes a private copy to each
// subscriber.
func (s *Syncer) notify() error {
	logs, err := s.store.ListLogs(0)
	if err != nil {
		return fmt.Errorf("list workout logs: %w", err)
	}

	s.mu.Lock()
	fns := make([]func([]*models.WorkoutLog), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(cloneLogs(logs))
	}
	return nil
}

// cloneLogs deep-copies the list so a subscriber can never mutate the
// feed or the store through what it received.
func cloneLogs(logs []*models.WorkoutLog) []*models.WorkoutLog {
	out := make([]*models.WorkoutLog, len(logs))
	for i, l := range logs {
		out[i] = l.Clone()
	}
	return out
}
