// Package scheduler は定期ジョブ実行のための薄いcronラッパーを提供します。
package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs registered jobs on standard 5-field cron schedules.
type Scheduler struct {
	c *cron.Cron
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{c: cron.New()}
}

// Add registers fn under the given cron spec. The job is logged on entry
// and exit so overlapping or long runs are visible.
func (s *Scheduler) Add(spec, name string, fn func()) error {
	_, err := s.c.AddFunc(spec, func() {
		slog.Info("scheduled job started", "job", name)
		fn()
		slog.Info("scheduled job finished", "job", name)
	})
	return err
}

// Start begins dispatching jobs in a background goroutine.
func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop stops dispatching and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}
