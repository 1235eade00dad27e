// File: services/availability/slots.go
package availability

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	availabilityRepo "garagehub/database/repository/availability"
	"garagehub/models"
	"garagehub/utils"
)

// validateBounds checks a fully resolved candidate window against the minute
// ranges a slot may span.
func validateBounds(startMinute, endMinute int) error {
	if startMinute < models.MinStartMinute || startMinute > models.MaxStartMinute {
		return ValidationError{Msg: fmt.Sprintf("startMinute must be between %d and %d", models.MinStartMinute, models.MaxStartMinute)}
	}
	if endMinute < models.MinEndMinute || endMinute > models.MaxEndMinute {
		return ValidationError{Msg: fmt.Sprintf("endMinute must be between %d and %d", models.MinEndMinute, models.MaxEndMinute)}
	}
	if startMinute >= endMinute {
		return ValidationError{Msg: "start must be before end"}
	}
	return nil
}

// ListSlots returns the garage's published windows, optionally filtered by
// day, ordered by day of week then start minute.
func (s *DefaultAvailabilityService) ListSlots(ctx context.Context, garageID string, day *models.DayOfWeek) ([]models.AvailabilitySlot, error) {
	if cached, ok := s.cachedSlots(ctx, garageID, day); ok {
		return cached, nil
	}

	slots, err := s.Repo.ListSlots(ctx, garageID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	s.storeSlots(ctx, garageID, day, slots)
	return slots, nil
}

func (s *DefaultAvailabilityService) GetSlot(ctx context.Context, garageID, slotID string) (*models.AvailabilitySlot, error) {
	slot, err := s.Repo.FindSlotByID(ctx, slotID, garageID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to fetch slot: %w", err)
	}
	return slot, nil
}

// CreateSlot publishes a new window after bounds validation; the overlap
// invariant is enforced atomically by the repository.
func (s *DefaultAvailabilityService) CreateSlot(ctx context.Context, garageID string, day models.DayOfWeek, startMinute, endMinute int) (*models.AvailabilitySlot, error) {
	if err := validateBounds(startMinute, endMinute); err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateSlot(ctx, &models.AvailabilitySlot{
		GarageID:    garageID,
		DayOfWeek:   day,
		StartMinute: startMinute,
		EndMinute:   endMinute,
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrOverlap) {
			return nil, ErrSlotOverlap
		}
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}

	s.invalidate(ctx, garageID, day)
	utils.GetLogger().Info("availability slot created",
		zap.String("slotID", created.ID),
		zap.String("garageID", garageID),
		zap.String("day", string(day)))
	return created, nil
}

// UpdateSlot merges the supplied fields over the current record, re-validates
// the merged window and re-runs the overlap check against all other slots on
// the resulting day. Moving the slot to another day moves the check with it.
func (s *DefaultAvailabilityService) UpdateSlot(ctx context.Context, garageID, slotID string, update models.SlotUpdate) (*models.AvailabilitySlot, error) {
	if update.DayOfWeek == nil && update.StartMinute == nil && update.EndMinute == nil {
		return nil, ValidationError{Msg: "no updates provided"}
	}

	current, err := s.GetSlot(ctx, garageID, slotID)
	if err != nil {
		return nil, err
	}

	candidate := *current
	if update.DayOfWeek != nil {
		candidate.DayOfWeek = *update.DayOfWeek
	}
	if update.StartMinute != nil {
		candidate.StartMinute = *update.StartMinute
	}
	if update.EndMinute != nil {
		candidate.EndMinute = *update.EndMinute
	}
	if err := validateBounds(candidate.StartMinute, candidate.EndMinute); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateSlot(ctx, &candidate)
	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrOverlap):
			return nil, ErrSlotOverlap
		case errors.Is(err, availabilityRepo.ErrNotFound):
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to update slot: %w", err)
	}

	// Both the old and the new day's listings are stale now.
	s.invalidate(ctx, garageID, current.DayOfWeek, candidate.DayOfWeek)
	utils.GetLogger().Info("availability slot updated",
		zap.String("slotID", slotID),
		zap.String("garageID", garageID))
	return updated, nil
}

// DeleteSlot removes a window owned by the garage.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, garageID, slotID string) error {
	current, err := s.GetSlot(ctx, garageID, slotID)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteSlot(ctx, slotID, garageID); err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	s.invalidate(ctx, garageID, current.DayOfWeek)
	utils.GetLogger().Info("availability slot deleted",
		zap.String("slotID", slotID),
		zap.String("garageID", garageID))
	return nil
}
