// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	appointmentRepo "garagehub/database/repository/appointment"
	availabilityRepo "garagehub/database/repository/availability"
	garageRepo "garagehub/database/repository/garage"
	"garagehub/models"
)

// RescheduleLeadTime is the minimum interval the current scheduled time must
// still be away for a driver to move it. It stops a driver from repeatedly
// pushing a slot back moments before it starts.
const RescheduleLeadTime = 2 * time.Hour

// AppointmentService owns the appointment lifecycle: driver-side booking,
// rescheduling and cancellation, and garage-side progression through the
// service states.
type AppointmentService interface {
	// Driver side.
	Book(ctx context.Context, driverID, garageID string, scheduledAt time.Time, serviceDescription string) (*models.Appointment, error)
	ListForDriver(ctx context.Context, driverID string, status *models.AppointmentStatus) ([]models.Appointment, error)
	GetForDriver(ctx context.Context, driverID, id string) (*models.Appointment, error)
	Reschedule(ctx context.Context, driverID, id string, newScheduledAt time.Time) (*models.Appointment, error)
	Cancel(ctx context.Context, driverID, id string) (*models.Appointment, error)

	// Garage side.
	ListForGarage(ctx context.Context, garageID string, status *models.AppointmentStatus) ([]models.Appointment, error)
	GetForGarage(ctx context.Context, garageID, id string) (*models.Appointment, error)
	Approve(ctx context.Context, garageID, id string) (*models.Appointment, error)
	Reject(ctx context.Context, garageID, id string) (*models.Appointment, error)
	UpdateServiceStatus(ctx context.Context, garageID, id string, to models.AppointmentStatus) (*models.Appointment, error)
}

// DefaultAppointmentService is the canonical AppointmentService.
type DefaultAppointmentService struct {
	Repo    appointmentRepo.AppointmentRepository
	Garages garageRepo.GarageRepository

	// Availability backs the optional booking-window policy. When
	// EnforceWindow is set, bookings outside any published slot are refused.
	Availability  availabilityRepo.AvailabilityRepository
	EnforceWindow bool

	// LeadTime overrides RescheduleLeadTime when positive.
	LeadTime time.Duration

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultAppointmentService) leadTime() time.Duration {
	if s.LeadTime > 0 {
		return s.LeadTime
	}
	return RescheduleLeadTime
}
