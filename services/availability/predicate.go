// File: services/availability/predicate.go
package availability

import (
	"context"
	"fmt"

	"garagehub/models"
)

// IsTimeWithinAnySlot reports whether the given minute of the given day falls
// inside any window the garage has published. Exposed for the booking flow's
// optional window policy; drivers can still book outside published windows
// when that policy is off.
func (s *DefaultAvailabilityService) IsTimeWithinAnySlot(ctx context.Context, garageID string, day models.DayOfWeek, minuteOfDay int) (bool, error) {
	within, err := s.Repo.IsTimeWithinAnySlot(ctx, garageID, day, minuteOfDay)
	if err != nil {
		return false, fmt.Errorf("failed to check availability window: %w", err)
	}
	return within, nil
}
