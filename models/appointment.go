package models

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus tracks an appointment through its service lifecycle.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusApproved  AppointmentStatus = "APPROVED"
	StatusRejected  AppointmentStatus = "REJECTED"
	StatusInService AppointmentStatus = "IN_SERVICE"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// AllAppointmentStatuses lists every lifecycle status.
var AllAppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusInService,
	StatusCompleted,
	StatusCancelled,
}

// appointmentStatusToStorage and appointmentStatusFromStorage are the two
// total mapping tables between the domain enum and its stored form. The
// reverse table is derived from the forward one so a status added to only
// one side fails loudly at startup instead of silently falling through.
var appointmentStatusToStorage = map[AppointmentStatus]string{
	StatusPending:   "PENDING",
	StatusApproved:  "APPROVED",
	StatusRejected:  "REJECTED",
	StatusInService: "IN_SERVICE",
	StatusCompleted: "COMPLETED",
	StatusCancelled: "CANCELLED",
}

var appointmentStatusFromStorage = make(map[string]AppointmentStatus, len(appointmentStatusToStorage))

func init() {
	for status, stored := range appointmentStatusToStorage {
		if _, dup := appointmentStatusFromStorage[stored]; dup {
			panic("models: duplicate stored appointment status " + stored)
		}
		appointmentStatusFromStorage[stored] = status
	}
	if len(appointmentStatusToStorage) != len(AllAppointmentStatuses) {
		panic("models: appointment status storage table is not exhaustive")
	}
	for _, status := range AllAppointmentStatuses {
		if _, ok := appointmentStatusToStorage[status]; !ok {
			panic("models: appointment status " + string(status) + " missing from storage table")
		}
	}
}

// Storage returns the stored representation of a status.
func (s AppointmentStatus) Storage() string {
	return appointmentStatusToStorage[s]
}

// Terminal reports whether no further transition may leave this status.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AppointmentStatusFromStorage maps a stored status value back onto the
// domain enum, rejecting anything outside the table.
func AppointmentStatusFromStorage(stored string) (AppointmentStatus, error) {
	status, ok := appointmentStatusFromStorage[stored]
	if !ok {
		return "", fmt.Errorf("unknown stored appointment status %q", stored)
	}
	return status, nil
}

// ParseAppointmentStatus validates a caller-supplied status filter value.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := appointmentStatusToStorage[status]; !ok {
		names := make([]string, len(AllAppointmentStatuses))
		for i, s := range AllAppointmentStatuses {
			names[i] = string(s)
		}
		return "", fmt.Errorf("invalid status, allowed: %s", strings.Join(names, ", "))
	}
	return status, nil
}

// DefaultServiceDescription is recorded when a driver books without one.
const DefaultServiceDescription = "General service"

// Appointment is a single scheduled service engagement between one driver and
// one garage. Driver and garage never change after creation; the scheduled
// time only moves through a reschedule, and the status only moves along the
// lifecycle transitions.
type Appointment struct {
	ID                 string            `bson:"id" json:"id"`
	DriverID           string            `bson:"driver_id" json:"driver_id"`
	GarageID           string            `bson:"garage_id" json:"garage_id"`
	ScheduledAt        time.Time         `bson:"scheduled_at" json:"scheduled_at"`
	ServiceDescription string            `bson:"service_description" json:"service_description"`
	Status             AppointmentStatus `bson:"status" json:"status"`
	CreatedAt          time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time         `bson:"updated_at" json:"updated_at"`
}

// AppointmentResponse is the wire snapshot of an appointment, with all
// timestamps rendered as ISO-8601 strings.
type AppointmentResponse struct {
	ID                 string `json:"id"`
	DriverID           string `json:"driverId"`
	GarageID           string `json:"garageId"`
	ScheduledAt        string `json:"scheduledAt"`
	ServiceDescription string `json:"serviceDescription"`
	Status             string `json:"status"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// NewAppointmentResponse builds the response snapshot for one appointment.
func NewAppointmentResponse(a Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:                 a.ID,
		DriverID:           a.DriverID,
		GarageID:           a.GarageID,
		ScheduledAt:        a.ScheduledAt.UTC().Format(time.RFC3339),
		ServiceDescription: a.ServiceDescription,
		Status:             a.Status.Storage(),
		CreatedAt:          a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAppointmentResponses builds response snapshots for a listing.
func NewAppointmentResponses(appointments []Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = NewAppointmentResponse(a)
	}
	return out
}

// BookAppointmentRequest is the driver-side booking payload.
type BookAppointmentRequest struct {
	GarageID           string `json:"garageId"`
	ScheduledAt        string `json:"scheduledAt"`
	ServiceDescription string `json:"serviceDescription"`
}

// RescheduleAppointmentRequest carries the proposed new time.
type RescheduleAppointmentRequest struct {
	ScheduledAt string `json:"scheduledAt"`
}

// UpdateServiceStatusRequest moves an appointment to IN_SERVICE or COMPLETED.
type UpdateServiceStatusRequest struct {
	Status string `json:"status"`
}
