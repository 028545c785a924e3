// Package store declares the repository interfaces the rest of the service
// depends on. Each record collection gets one repository; all query
// predicates are explicit method parameters, never ambient state.
package store

import (
	"context"
	"time"

	"powerbank-rental/api/models"
)

type StationRepository interface {
	Upsert(ctx context.Context, station *models.Station) error
	FindByID(ctx context.Context, stationID int) (*models.Station, error)
	FindAll(ctx context.Context) ([]models.Station, error)
}

type PowerBankRepository interface {
	Insert(ctx context.Context, bank *models.PowerBank) error

	// CountFree returns the number of FREE power banks at the station.
	// Zero is a valid count, not an error.
	CountFree(ctx context.Context, stationID int) (int64, error)

	// Reserve atomically flips one FREE power bank at the station to
	// RESERVED with reservedAt=now and returns it. Returns (nil, nil)
	// when the station has no FREE bank.
	Reserve(ctx context.Context, stationID int, now time.Time) (*models.PowerBank, error)

	// Release reverts a RESERVED power bank to FREE. A bank in any other
	// status is left untouched.
	Release(ctx context.Context, bankID string) error

	// Confirm marks a power bank INUSE by the given renter.
	Confirm(ctx context.Context, bankID, userID string, rentedAt time.Time) error

	FindInUseByUser(ctx context.Context, userID string) ([]models.PowerBank, error)

	// FindOverdue returns INUSE power banks rented at or before the cutoff.
	FindOverdue(ctx context.Context, cutoff time.Time) ([]models.PowerBank, error)

	// ReleaseExpiredReservations reverts RESERVED banks whose reservation
	// started at or before the cutoff back to FREE, returning the number
	// of banks released.
	ReleaseExpiredReservations(ctx context.Context, cutoff time.Time) (int64, error)

	// ReleaseAllForUser bulk-returns every INUSE bank rented by the user,
	// returning the number of banks freed.
	ReleaseAllForUser(ctx context.Context, userID string) (int64, error)
}

type UserRepository interface {
	// Insert creates the user unless the userId already exists. It reports
	// whether a new record was created; repeat calls never update fields.
	Insert(ctx context.Context, user *models.User) (bool, error)

	// FindByID returns (nil, nil) when the user does not exist.
	FindByID(ctx context.Context, userID string) (*models.User, error)

	FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error)

	// SetBanned updates the ban flag, returning models.ErrNotFound for an
	// unknown user. It never touches the reminder counter.
	SetBanned(ctx context.Context, userID string, banned bool) error

	IncrementReminders(ctx context.Context, userID string) error
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
	FindByUser(ctx context.Context, userID string) ([]models.Payment, error)

	// MarkPaidBySession conditionally transitions the payment with the
	// given checkout session id from pending to paid and returns the
	// updated record. Returns (nil, nil) when no pending payment matches,
	// which makes webhook replays a no-op.
	MarkPaidBySession(ctx context.Context, sessionID string) (*models.Payment, error)
}
