package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment links a Stripe checkout session to the power bank it reserves.
// Status moves pending -> paid exactly once and never back.
type Payment struct {
	ID          string        `bson:"_id" json:"id"`
	StationID   int           `bson:"station_id" json:"stationId"`
	PowerBankID string        `bson:"power_bank_id" json:"powerBankId"`
	UserID      string        `bson:"user_id" json:"userId"`
	Amount      int64         `bson:"amount" json:"amount"`
	Currency    string        `bson:"currency" json:"currency"`
	SessionID   string        `bson:"session_id" json:"sessionId"`
	Status      PaymentStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}
