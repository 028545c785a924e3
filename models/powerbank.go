package models

import "time"

type PowerBankStatus string

const (
	PowerBankStatusFree     PowerBankStatus = "FREE"
	PowerBankStatusReserved PowerBankStatus = "RESERVED"
	PowerBankStatusInUse    PowerBankStatus = "INUSE"
)

// PowerBank is a rentable battery unit. UserID and RentedAt are set iff
// status is INUSE; ReservedAt is set iff status is RESERVED.
type PowerBank struct {
	ID         string          `bson:"_id" json:"id"`
	StationID  int             `bson:"station_id" json:"stationId"`
	Status     PowerBankStatus `bson:"status" json:"status"`
	UserID     *string         `bson:"user_id,omitempty" json:"userId,omitempty"`
	RentedAt   *time.Time      `bson:"rented_at,omitempty" json:"rentedAt,omitempty"`
	ReservedAt *time.Time      `bson:"reserved_at,omitempty" json:"reservedAt,omitempty"`
	CreatedAt  time.Time       `bson:"created_at" json:"createdAt"`
}
