// File: services/appointment/driver.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	appointmentRepo "garagehub/database/repository/appointment"
	garageRepo "garagehub/database/repository/garage"
	"garagehub/models"
	"garagehub/utils"
)

// Book creates a PENDING appointment for the driver against an active garage
// at a strictly future time. A blank service description falls back to the
// default.
func (s *DefaultAppointmentService) Book(ctx context.Context, driverID, garageID string, scheduledAt time.Time, serviceDescription string) (*models.Appointment, error) {
	garage, err := s.Garages.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, garageRepo.ErrNotFound) {
			return nil, ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to look up garage: %w", err)
	}
	if garage.Status != models.GarageActive {
		return nil, ValidationError{Msg: "garage is not available"}
	}

	now := s.now()
	if !scheduledAt.After(now) {
		return nil, ValidationError{Msg: "appointment date and time must be in the future"}
	}

	if s.EnforceWindow && s.Availability != nil {
		within, err := s.Availability.IsTimeWithinAnySlot(ctx, garageID, models.DayOfWeekAt(scheduledAt), models.MinuteOfDayAt(scheduledAt))
		if err != nil {
			return nil, fmt.Errorf("failed to check availability window: %w", err)
		}
		if !within {
			return nil, ValidationError{Msg: "requested time is outside the garage's published availability"}
		}
	}

	description := strings.TrimSpace(serviceDescription)
	if description == "" {
		description = models.DefaultServiceDescription
	}

	created, err := s.Repo.Create(ctx, &models.Appointment{
		DriverID:           driverID,
		GarageID:           garageID,
		ScheduledAt:        scheduledAt.UTC(),
		ServiceDescription: description,
		Status:             models.StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentID", created.ID),
		zap.String("garageID", garageID),
		zap.Time("scheduledAt", created.ScheduledAt))
	return created, nil
}

// ListForDriver lists the driver's appointments, newest scheduled first,
// optionally filtered by status.
func (s *DefaultAppointmentService) ListForDriver(ctx context.Context, driverID string, status *models.AppointmentStatus) ([]models.Appointment, error) {
	appointments, err := s.Repo.FindByDriver(ctx, driverID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *DefaultAppointmentService) GetForDriver(ctx context.Context, driverID, id string) (*models.Appointment, error) {
	appointment, err := s.Repo.FindByIDForDriver(ctx, id, driverID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return appointment, nil
}

// Reschedule moves a PENDING appointment to a new future time. The existing
// time must still be at least the lead time away when the request arrives.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, driverID, id string, newScheduledAt time.Time) (*models.Appointment, error) {
	current, err := s.GetForDriver(ctx, driverID, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, TransitionError{Op: "rescheduled", Current: current.Status, Required: []models.AppointmentStatus{models.StatusPending}}
	}

	now := s.now()
	lead := s.leadTime()
	if current.ScheduledAt.Before(now.Add(lead)) {
		return nil, ValidationError{Msg: fmt.Sprintf("rescheduling is not allowed less than %d hours before the appointment", int(lead.Hours()))}
	}
	if !newScheduledAt.After(now) {
		return nil, ValidationError{Msg: "new date and time must be in the future"}
	}

	updated, err := s.Repo.RescheduleForDriver(ctx, id, driverID, current.ScheduledAt, newScheduledAt.UTC())
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNoMatch) {
			return nil, s.classifyDriverNoMatch(ctx, driverID, id)
		}
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	utils.GetLogger().Info("appointment rescheduled",
		zap.String("appointmentID", id),
		zap.Time("scheduledAt", updated.ScheduledAt))
	return updated, nil
}

// Cancel marks the appointment cancelled, from any state except a previous
// cancellation.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, driverID, id string) (*models.Appointment, error) {
	cancelled, err := s.Repo.CancelForDriver(ctx, id, driverID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNoMatch) {
			current, ferr := s.Repo.FindByIDForDriver(ctx, id, driverID)
			if ferr != nil {
				if errors.Is(ferr, appointmentRepo.ErrNotFound) {
					return nil, ErrNotFound
				}
				return nil, fmt.Errorf("failed to fetch appointment: %w", ferr)
			}
			if current.Status == models.StatusCancelled {
				return nil, ErrAlreadyCancelled
			}
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	utils.GetLogger().Info("appointment cancelled", zap.String("appointmentID", id))
	return cancelled, nil
}

// classifyDriverNoMatch decides what a zero-match conditional write meant:
// the appointment is gone, left PENDING, or was touched concurrently.
func (s *DefaultAppointmentService) classifyDriverNoMatch(ctx context.Context, driverID, id string) error {
	current, err := s.Repo.FindByIDForDriver(ctx, id, driverID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if current.Status != models.StatusPending {
		return TransitionError{Op: "rescheduled", Current: current.Status, Required: []models.AppointmentStatus{models.StatusPending}}
	}
	return ErrConcurrentModification
}
