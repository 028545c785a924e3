// Package jobs holds the periodic sweeps: overdue-rental enforcement and
// reservation expiry. Job bodies take an explicit clock so tests can drive
// time without a scheduler.
package jobs

import (
	"time"

	"powerbank-rental/api/logger"
	"powerbank-rental/api/mail"
	"powerbank-rental/api/store"

	"go.uber.org/zap"
)

type JobRunner struct {
	powerBanks store.PowerBankRepository
	users      store.UserRepository
	mailer     mail.Sender

	overdueThreshold time.Duration
	reservationTTL   time.Duration
	maxReminders     int
}

func NewJobRunner(powerBanks store.PowerBankRepository, users store.UserRepository, mailer mail.Sender, overdueThreshold, reservationTTL time.Duration, maxReminders int) *JobRunner {
	return &JobRunner{
		powerBanks:       powerBanks,
		users:            users,
		mailer:           mailer,
		overdueThreshold: overdueThreshold,
		reservationTTL:   reservationTTL,
		maxReminders:     maxReminders,
	}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("job panicked",
				zap.String("job", jobName),
				zap.Any("panic", r))
		}
	}()

	logger.Get().Debug("starting job", zap.String("job", jobName))
	jobFunc()
	logger.Get().Debug("job completed", zap.String("job", jobName))
}
