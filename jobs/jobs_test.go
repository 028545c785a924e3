package jobs

import (
	"context"
	"errors"
	"sort"
	"time"

	"powerbank-rental/api/models"
)

type fakePowerBankRepo struct {
	banks map[string]*models.PowerBank
}

func newFakePowerBankRepo() *fakePowerBankRepo {
	return &fakePowerBankRepo{banks: make(map[string]*models.PowerBank)}
}

func (r *fakePowerBankRepo) addInUse(bankID, userID string, rentedAt time.Time) {
	r.banks[bankID] = &models.PowerBank{
		ID:        bankID,
		StationID: 1,
		Status:    models.PowerBankStatusInUse,
		UserID:    &userID,
		RentedAt:  &rentedAt,
	}
}

func (r *fakePowerBankRepo) addReserved(bankID string, reservedAt time.Time) {
	r.banks[bankID] = &models.PowerBank{
		ID:         bankID,
		StationID:  1,
		Status:     models.PowerBankStatusReserved,
		ReservedAt: &reservedAt,
	}
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

func (r *fakePowerBankRepo) Reserve(_ context.Context, _ int, _ time.Time) (*models.PowerBank, error) {
	return nil, nil
}

func (r *fakePowerBankRepo) Release(_ context.Context, bankID string) error {
	if bank, ok := r.banks[bankID]; ok && bank.Status == models.PowerBankStatusReserved {
		bank.Status = models.PowerBankStatusFree
		bank.ReservedAt = nil
	}
	return nil
}

func (r *fakePowerBankRepo) Confirm(_ context.Context, _, _ string, _ time.Time) error {
	return nil
}

func (r *fakePowerBankRepo) FindInUseByUser(_ context.Context, _ string) ([]models.PowerBank, error) {
	return nil, nil
}

func (r *fakePowerBankRepo) FindOverdue(_ context.Context, cutoff time.Time) ([]models.PowerBank, error) {
	var out []models.PowerBank
	for _, bank := range r.banks {
		if bank.Status == models.PowerBankStatusInUse && bank.RentedAt != nil && !bank.RentedAt.After(cutoff) {
			out = append(out, *bank)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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

func (r *fakePowerBankRepo) ReleaseAllForUser(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(userID, email string, remindersSent int, banned bool) {
	r.users[userID] = &models.User{
		UserID:        userID,
		Name:          "User " + userID,
		Email:         email,
		RemindersSent: remindersSent,
		IsBanned:      banned,
		Role:          models.UserRoleUser,
	}
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

func (r *fakeUserRepo) FindByRole(_ context.Context, _ models.UserRole) ([]models.User, error) {
	return nil, nil
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

type sentMail struct {
	email          string
	reminderNumber int
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]bool)}
}

func (m *fakeMailer) SendReminder(_ context.Context, email, _ string, reminderNumber int) error {
	if m.failFor[email] {
		return errors.New("smtp connection refused")
	}
	m.sent = append(m.sent, sentMail{email: email, reminderNumber: reminderNumber})
	return nil
}

func (m *fakeMailer) sentTo(email string) int {
	count := 0
	for _, s := range m.sent {
		if s.email == email {
			count++
		}
	}
	return count
}
