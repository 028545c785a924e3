package handlers

import (
	"context"
	"sort"
	"time"

	"powerbank-rental/api/models"
)

// In-memory repositories mirroring the conditional-update semantics of the
// mongo implementations.

type fakeStationRepo struct {
	stations map[int]models.Station
}

func newFakeStationRepo() *fakeStationRepo {
	return &fakeStationRepo{stations: make(map[int]models.Station)}
}

func (r *fakeStationRepo) Upsert(_ context.Context, station *models.Station) error {
	r.stations[station.StationID] = *station
	return nil
}

func (r *fakeStationRepo) FindByID(_ context.Context, stationID int) (*models.Station, error) {
	station, ok := r.stations[stationID]
	if !ok {
		return nil, nil
	}
	return &station, nil
}

func (r *fakeStationRepo) FindAll(_ context.Context) ([]models.Station, error) {
	var out []models.Station
	for _, station := range r.stations {
		out = append(out, station)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StationID < out[j].StationID })
	return out, nil
}

type fakePowerBankRepo struct {
	banks map[string]*models.PowerBank
}

func newFakePowerBankRepo() *fakePowerBankRepo {
	return &fakePowerBankRepo{banks: make(map[string]*models.PowerBank)}
}

func (r *fakePowerBankRepo) Insert(_ context.Context, bank *models.PowerBank) error {
	copied := *bank
	r.banks[bank.ID] = &copied
	return nil
}

func (r *fakePowerBankRepo) CountFree(_ context.Context, stationID int) (int64, error) {
	var count int64
	for _, bank := range r.banks {
		if bank.StationID == stationID && bank.Status == models.PowerBankStatusFree {
			count++
		}
	}
	return count, nil
}

func (r *fakePowerBankRepo) Reserve(_ context.Context, stationID int, now time.Time) (*models.PowerBank, error) {
	for _, bank := range r.banks {
		if bank.StationID == stationID && bank.Status == models.PowerBankStatusFree {
			bank.Status = models.PowerBankStatusReserved
			reservedAt := now
			bank.ReservedAt = &reservedAt
			copied := *bank
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePowerBankRepo) Release(_ context.Context, bankID string) error {
	bank, ok := r.banks[bankID]
	if ok && bank.Status == models.PowerBankStatusReserved {
		bank.Status = models.PowerBankStatusFree
		bank.ReservedAt = nil
	}
	return nil
}

func (r *fakePowerBankRepo) Confirm(_ context.Context, bankID, userID string, rentedAt time.Time) error {
	bank, ok := r.banks[bankID]
	if !ok {
		return nil
	}
	bank.Status = models.PowerBankStatusInUse
	bank.UserID = &userID
	ts := rentedAt
	bank.RentedAt = &ts
	bank.ReservedAt = nil
	return nil
}

func (r *fakePowerBankRepo) FindInUseByUser(_ context.Context, userID string) ([]models.PowerBank, error) {
	var out []models.PowerBank
	for _, bank := range r.banks {
		if bank.Status == models.PowerBankStatusInUse && bank.UserID != nil && *bank.UserID == userID {
			out = append(out, *bank)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePowerBankRepo) FindOverdue(_ context.Context, cutoff time.Time) ([]models.PowerBank, error) {
	var out []models.PowerBank
	for _, bank := range r.banks {
		if bank.Status == models.PowerBankStatusInUse && bank.RentedAt != nil && !bank.RentedAt.After(cutoff) {
			out = append(out, *bank)
		}
	}
	return out, nil
}

func (r *fakePowerBankRepo) ReleaseExpiredReservations(_ context.Context, cutoff time.Time) (int64, error) {
	var released int64
	for _, bank := range r.banks {
		if bank.Status == models.PowerBankStatusReserved && bank.ReservedAt != nil && !bank.ReservedAt.After(cutoff) {
			bank.Status = models.PowerBankStatusFree
			bank.ReservedAt = nil
			released++
		}
	}
	return released, nil
}

func (r *fakePowerBankRepo) ReleaseAllForUser(_ context.Context, userID string) (int64, error) {
	var released int64
	for _, bank := range r.banks {
		if bank.Status == models.PowerBankStatusInUse && bank.UserID != nil && *bank.UserID == userID {
			bank.Status = models.PowerBankStatusFree
			bank.UserID = nil
			bank.RentedAt = nil
			released++
		}
	}
	return released, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Insert(_ context.Context, user *models.User) (bool, error) {
	if _, exists := r.users[user.UserID]; exists {
		return false, nil
	}
	copied := *user
	r.users[user.UserID] = &copied
	return true, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByRole(_ context.Context, role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *fakeUserRepo) SetBanned(_ context.Context, userID string, banned bool) error {
	user, ok := r.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	user.IsBanned = banned
	return nil
}

func (r *fakeUserRepo) IncrementReminders(_ context.Context, userID string) error {
	if user, ok := r.users[userID]; ok {
		user.RemindersSent++
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Insert(_ context.Context, payment *models.Payment) error {
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) FindByUser(_ context.Context, userID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, payment := range r.payments {
		if payment.UserID == userID {
			out = append(out, *payment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePaymentRepo) MarkPaidBySession(_ context.Context, sessionID string) (*models.Payment, error) {
	for _, payment := range r.payments {
		if payment.SessionID == sessionID && payment.Status == models.PaymentStatusPending {
			payment.Status = models.PaymentStatusPaid
			copied := *payment
			return &copied, nil
		}
	}
	return nil, nil
}
