// File: services/appointment/garage.go
package appointment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	appointmentRepo "garagehub/database/repository/appointment"
	"garagehub/models"
	"garagehub/utils"
)

// ListForGarage lists the garage's appointments, earliest scheduled first,
// optionally filtered by status.
func (s *DefaultAppointmentService) ListForGarage(ctx context.Context, garageID string, status *models.AppointmentStatus) ([]models.Appointment, error) {
	appointments, err := s.Repo.FindByGarage(ctx, garageID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *DefaultAppointmentService) GetForGarage(ctx context.Context, garageID, id string) (*models.Appointment, error) {
	appointment, err := s.Repo.FindByIDForGarage(ctx, id, garageID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return appointment, nil
}

// Approve moves a PENDING appointment to APPROVED.
func (s *DefaultAppointmentService) Approve(ctx context.Context, garageID, id string) (*models.Appointment, error) {
	return s.transition(ctx, garageID, id, "approved",
		[]models.AppointmentStatus{models.StatusPending}, models.StatusApproved)
}

// Reject moves a PENDING appointment to REJECTED.
func (s *DefaultAppointmentService) Reject(ctx context.Context, garageID, id string) (*models.Appointment, error) {
	return s.transition(ctx, garageID, id, "rejected",
		[]models.AppointmentStatus{models.StatusPending}, models.StatusRejected)
}

// UpdateServiceStatus progresses an appointment through the service states:
// APPROVED to IN_SERVICE, or APPROVED/IN_SERVICE straight to COMPLETED.
func (s *DefaultAppointmentService) UpdateServiceStatus(ctx context.Context, garageID, id string, to models.AppointmentStatus) (*models.Appointment, error) {
	switch to {
	case models.StatusInService:
		return s.transition(ctx, garageID, id, "set to in-service",
			[]models.AppointmentStatus{models.StatusApproved}, models.StatusInService)
	case models.StatusCompleted:
		return s.transition(ctx, garageID, id, "marked completed",
			[]models.AppointmentStatus{models.StatusApproved, models.StatusInService}, models.StatusCompleted)
	default:
		return nil, ValidationError{Msg: "status is required and must be IN_SERVICE or COMPLETED"}
	}
}

// transition runs a garage-side status move as a single conditional write
// and, when the filter matched nothing, re-reads the document to tell an
// absent appointment from an impermissible prior state.
func (s *DefaultAppointmentService) transition(ctx context.Context, garageID, id, op string, from []models.AppointmentStatus, to models.AppointmentStatus) (*models.Appointment, error) {
	updated, err := s.Repo.UpdateStatusForGarage(ctx, id, garageID, from, to)
	if err == nil {
		utils.GetLogger().Info("appointment status updated",
			zap.String("appointmentID", id),
			zap.String("status", string(to)))
		return updated, nil
	}
	if !errors.Is(err, appointmentRepo.ErrNoMatch) {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	current, ferr := s.Repo.FindByIDForGarage(ctx, id, garageID)
	if ferr != nil {
		if errors.Is(ferr, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", ferr)
	}
	for _, allowed := range from {
		if current.Status == allowed {
			return nil, ErrConcurrentModification
		}
	}
	return nil, TransitionError{Op: op, Current: current.Status, Required: from}
}
