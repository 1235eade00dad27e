// File: services/availability/cache.go
package availability

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"garagehub/models"
	"garagehub/utils"
)

func cacheKey(garageID string, day *models.DayOfWeek) string {
	if day == nil {
		return utils.SlotCachePrefix + garageID + ":all"
	}
	return utils.SlotCachePrefix + garageID + ":" + string(*day)
}

// cachedSlots returns a cached listing if one is present and decodable.
func (s *DefaultAvailabilityService) cachedSlots(ctx context.Context, garageID string, day *models.DayOfWeek) ([]models.AvailabilitySlot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, cacheKey(garageID, day)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.AvailabilitySlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultAvailabilityService) storeSlots(ctx context.Context, garageID string, day *models.DayOfWeek, slots []models.AvailabilitySlot) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(garageID, day), data, utils.SlotCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache slot listing",
			zap.String("garageID", garageID), zap.Error(err))
	}
}

// invalidate drops the whole-garage listing plus the listings for each
// affected day.
func (s *DefaultAvailabilityService) invalidate(ctx context.Context, garageID string, days ...models.DayOfWeek) {
	if s.Cache == nil {
		return
	}
	keys := []string{cacheKey(garageID, nil)}
	seen := make(map[models.DayOfWeek]bool, len(days))
	for _, day := range days {
		if seen[day] {
			continue
		}
		seen[day] = true
		d := day
		keys = append(keys, cacheKey(garageID, &d))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache",
			zap.String("garageID", garageID), zap.Error(err))
	}
}
