package models

import "time"

// GarageStatus is the standing assigned to a garage by the external
// garage-management side. Only ACTIVE garages accept bookings.
type GarageStatus string

const (
	GaragePendingApproval GarageStatus = "PENDING_APPROVAL"
	GarageActive          GarageStatus = "ACTIVE"
	GarageSuspended       GarageStatus = "SUSPENDED"
)

// Garage is the read-only view of a garage consumed by the booking flow.
type Garage struct {
	ID        string       `bson:"id" json:"id"`
	Name      string       `bson:"name" json:"name"`
	Status    GarageStatus `bson:"status" json:"status"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}
