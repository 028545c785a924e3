package scheduler

import (
	"fmt"
	"time"

	"powerbank-rental/api/jobs"
	"powerbank-rental/api/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner, interval time.Duration) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs(interval)
	return s
}

func (s *Scheduler) registerJobs(interval time.Duration) {
	spec := fmt.Sprintf("@every %s", interval)

	if _, err := s.cron.AddFunc(spec, s.jobs.EnforceOverdueRentals); err != nil {
		logger.Get().Error("failed to register overdue sweep", zap.Error(err))
	}

	if _, err := s.cron.AddFunc(spec, s.jobs.ExpireReservations); err != nil {
		logger.Get().Error("failed to register reservation sweep", zap.Error(err))
	}

	logger.Get().Info("sweep jobs registered", zap.Duration("interval", interval))
}

// Start begins the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Get().Info("scheduler started")
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Get().Info("scheduler stopped")
}
