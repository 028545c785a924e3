package jobs

import (
	"context"
	"time"

	"powerbank-rental/api/logger"

	"go.uber.org/zap"
)

// EnforceOverdueRentals is the cron entry point for the overdue sweep.
func (jr *JobRunner) EnforceOverdueRentals() {
	jr.runWithRecovery("EnforceOverdueRentals", func() {
		jr.SweepOverdue(context.Background(), time.Now())
	})
}

// SweepOverdue escalates every overdue renter one step: a reminder email
// per tick while under the limit, then a ban. Per-user failures are logged
// and skipped so one bad record or mail outage never blocks the rest of the
// tick; an unsent reminder is retried implicitly on the next run.
func (jr *JobRunner) SweepOverdue(ctx context.Context, now time.Time) {
	cutoff := now.Add(-jr.overdueThreshold)

	banks, err := jr.powerBanks.FindOverdue(ctx, cutoff)
	if err != nil {
		logger.Get().Error("failed to query overdue power banks", zap.Error(err))
		return
	}

	reminded := 0
	banned := 0
	for _, bank := range banks {
		if bank.UserID == nil {
			continue
		}
		userID := *bank.UserID

		user, err := jr.users.FindByID(ctx, userID)
		if err != nil {
			logger.Get().Error("failed to fetch overdue renter",
				zap.String("user_id", userID),
				zap.Error(err))
			continue
		}
		if user == nil || user.IsBanned {
			continue
		}

		if user.RemindersSent >= jr.maxReminders {
			if err := jr.users.SetBanned(ctx, userID, true); err != nil {
				logger.Get().Error("failed to ban overdue renter",
					zap.String("user_id", userID),
					zap.Error(err))
				continue
			}
			banned++
			logger.Get().Info("overdue renter banned",
				zap.String("user_id", userID),
				zap.Int("reminders_sent", user.RemindersSent))
			continue
		}

		if user.Email == "" {
			continue
		}

		if err := jr.mailer.SendReminder(ctx, user.Email, user.Name, user.RemindersSent+1); err != nil {
			// Counter stays unchanged; the next tick retries.
			logger.Get().Error("failed to send overdue reminder",
				zap.String("user_id", userID),
				zap.String("email", user.Email),
				zap.Error(err))
			continue
		}

		if err := jr.users.IncrementReminders(ctx, userID); err != nil {
			logger.Get().Error("failed to record sent reminder",
				zap.String("user_id", userID),
				zap.Error(err))
			continue
		}
		reminded++
	}

	if reminded > 0 || banned > 0 {
		logger.Get().Info("overdue sweep completed",
			zap.Int("overdue_banks", len(banks)),
			zap.Int("reminded", reminded),
			zap.Int("banned", banned))
	}
}
