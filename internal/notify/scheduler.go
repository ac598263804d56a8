// Package notify schedules recurring meal reminders. The server keeps one
// scheduler for the process; the meal plan service re-syncs its entries
// whenever today's plans or the configured meal times change.
package notify

import (
	"fmt"
	"sync"

	"budgetbites/internal/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler manages recurring reminder jobs keyed by opaque identifiers.
type Scheduler interface {
	// Schedule registers job under a standard 5-field cron spec and returns
	// the entry identifier.
	Schedule(spec string, job func()) (string, error)
	// Cancel removes the entry with the given identifier. It reports
	// whether an entry was removed.
	Cancel(id string) bool
	// CancelAll removes every entry.
	CancelAll()
	// Scheduled returns the identifiers of all live entries.
	Scheduled() []string
}

// CronScheduler is the production Scheduler backed by robfig/cron.
type CronScheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

var _ Scheduler = (*CronScheduler)(nil)

// NewCronScheduler creates a started scheduler. Callers own its lifecycle
// and should Stop it on shutdown.
func NewCronScheduler() *CronScheduler {
	c := cron.New()
	c.Start()
	return &CronScheduler{
		cron:    c,
		entries: make(map[string]cron.EntryID),
	}
}

// Schedule registers job under spec and returns its identifier.
func (s *CronScheduler) Schedule(spec string, job func()) (string, error) {
	entryID, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return "", fmt.Errorf("invalid schedule spec %q: %w", spec, err)
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.entries[id] = entryID
	s.mu.Unlock()

	logger.Get().Debugw("reminder scheduled", "id", id, "spec", spec)
	return id, nil
}

// Cancel removes the entry with the given identifier.
func (s *CronScheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.entries[id]
	if !ok {
		return false
	}
	s.cron.Remove(entryID)
	delete(s.entries, id)
	return true
}

// CancelAll removes every entry.
func (s *CronScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entryID := range s.entries {
		s.cron.Remove(entryID)
		delete(s.entries, id)
	}
}

// Scheduled returns the identifiers of all live entries.
func (s *CronScheduler) Scheduled() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}

// Stop halts the underlying cron runner. Pending entries are kept, so a
// stopped scheduler only pauses delivery.
func (s *CronScheduler) Stop() {
	s.cron.Stop()
}

// DailySpec builds the cron spec for a reminder firing every day at the
// given wall-clock time.
func DailySpec(hour, minute int) string {
	return fmt.Sprintf("%d %d * * *", minute, hour)
}
