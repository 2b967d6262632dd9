package upload

import (
	"context"
	"time"

	"github.com/ashokumar06/large-file-recever/tool"
)

// Sweeper evicts sessions idle beyond a threshold together with their staging
// directories. It runs as a separate background task; the core never evicts on
// its own, so disabling the sweeper preserves sessions for the process
// lifetime.
type Sweeper struct {
	store    *MemoryStore
	staging  Staging
	maxIdle  time.Duration
	interval time.Duration
}

func NewSweeper(store *MemoryStore, staging Staging, maxIdle, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		staging:  staging,
		maxIdle:  maxIdle,
		interval: interval,
	}
}

// Run sweeps on a ticker until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(time.Now())
		}
	}
}

// Sweep removes every session whose last activity predates now-maxIdle and
// returns the number evicted. Staging cleanup failures are logged, not
// escalated.
func (s *Sweeper) Sweep(now time.Time) int {
	cutoff := now.Add(-s.maxIdle)
	evicted := 0
	for _, id := range s.store.InactiveSince(cutoff) {
		if err := s.staging.Remove(id); err != nil {
			tool.DefaultLogger.Warnf("Failed to remove staging area for stale session %s: %v", id, err)
		}
		if err := s.store.Remove(id); err == nil {
			evicted++
		}
	}
	if evicted > 0 {
		tool.DefaultLogger.Infof("Swept %d stale upload session(s)", evicted)
	}
	return evicted
}
