package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/flashlist/internal/category"
)

// CategoryRefresher is the category cache as the scheduler sees it.
type CategoryRefresher interface {
	Stale(ctx context.Context) (bool, error)
	Refresh(ctx context.Context) (*category.Snapshot, error)
}

// Scheduler runs periodic maintenance: today, keeping the category cache
// within its refresh interval.
type Scheduler struct {
	cron       *cron.Cron
	categories CategoryRefresher
	log        *slog.Logger
}

// NewScheduler creates a Scheduler that checks the category cache every
// checkInterval and refreshes it once stale.
func NewScheduler(
	categories CategoryRefresher,
	checkInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if checkInterval <= 0 {
		return nil, fmt.Errorf("category check interval must be positive, got %s", checkInterval)
	}

	c := cron.New()

	s := &Scheduler{
		cron:       c,
		categories: categories,
		log:        log,
	}

	if _, err := c.AddFunc(
		"@every "+checkInterval.String(),
		s.runCategoryRefresh,
	); err != nil {
		return nil, fmt.Errorf("adding category refresh job: %w", err)
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RefreshCategoriesIfStale refreshes the category cache when it is absent
// or older than its interval. It reports whether a refresh ran.
func (s *Scheduler) RefreshCategoriesIfStale(ctx context.Context) (bool, error) {
	stale, err := s.categories.Stale(ctx)
	if err != nil {
		return false, err
	}
	if !stale {
		return false, nil
	}
	snap, err := s.categories.Refresh(ctx)
	if err != nil {
		return false, err
	}
	s.log.Info("category cache refreshed by schedule", "source", snap.Source, "entries", len(snap.Entries))
	return true, nil
}

func (s *Scheduler) runCategoryRefresh() {
	ctx := context.Background()
	s.log.Debug("scheduled category check starting")
	if _, err := s.RefreshCategoriesIfStale(ctx); err != nil {
		s.log.Error("scheduled category refresh failed", "error", err)
	}
}
