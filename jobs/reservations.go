package jobs

import (
	"context"
	"time"

	"powerbank-rental/api/logger"

	"go.uber.org/zap"
)

// ExpireReservations is the cron entry point for the reservation sweep.
func (jr *JobRunner) ExpireReservations() {
	jr.runWithRecovery("ExpireReservations", func() {
		jr.SweepReservations(context.Background(), time.Now())
	})
}

// SweepReservations reverts reservations whose checkout was never completed
// back to FREE once the TTL has passed. The update is conditional on the
// RESERVED status, so a reservation confirmed between query and update is
// left alone.
func (jr *JobRunner) SweepReservations(ctx context.Context, now time.Time) {
	cutoff := now.Add(-jr.reservationTTL)

	released, err := jr.powerBanks.ReleaseExpiredReservations(ctx, cutoff)
	if err != nil {
		logger.Get().Error("failed to release expired reservations", zap.Error(err))
		return
	}

	if released > 0 {
		logger.Get().Info("expired reservations released", zap.Int64("count", released))
	}
}
