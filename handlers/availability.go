// File: handlers/availability.go
package handlers

import (
	"net/http"

	"garagehub/middleware"
	"garagehub/models"
	availabilitySvc "garagehub/services/availability"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes garage slot management and the driver-facing
// read-only schedule view.
type AvailabilityHandler struct {
	Service availabilitySvc.AvailabilityService
}

// resolveMinute picks between a raw minute offset and an "HH:MM" string,
// refusing payloads that supply both or neither.
func resolveMinute(c *gin.Context, field string, minute *int, clock string) (int, bool) {
	switch {
	case minute != nil && clock != "":
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " given both as minutes and as a clock time"})
		return 0, false
	case minute != nil:
		return *minute, true
	case clock != "":
		m, err := models.ParseTimeToMinute(clock)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": field + ": " + err.Error()})
			return 0, false
		}
		return m, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return 0, false
	}
}

// parseDayFilter reads the optional ?day= query parameter.
func parseDayFilter(c *gin.Context) (*models.DayOfWeek, bool) {
	raw := c.Query("day")
	if raw == "" {
		return nil, true
	}
	day, err := models.ParseDayOfWeek(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &day, true
}

// ListSlotsHandler handles GET /api/garages/availability.
func (h *AvailabilityHandler) ListSlotsHandler(c *gin.Context) {
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := parseDayFilter(c)
	if !ok {
		return
	}

	slots, err := h.Service.ListSlots(c.Request.Context(), garageID, day)
	if err != nil {
		respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAvailabilitySlotResponses(slots))
}

// GetSlotHandler handles GET /api/garages/availability/:slotId.
func (h *AvailabilityHandler) GetSlotHandler(c *gin.Context) {
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	slot, err := h.Service.GetSlot(c.Request.Context(), garageID, c.Param("slotId"))
	if err != nil {
		respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAvailabilitySlotResponse(*slot))
}

// CreateSlotHandler handles POST /api/garages/availability.
func (h *AvailabilityHandler) CreateSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	day, err := models.ParseDayOfWeek(req.DayOfWeek)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, ok := resolveMinute(c, "startTime", req.StartMinute, req.StartTime)
	if !ok {
		return
	}
	end, ok := resolveMinute(c, "endTime", req.EndMinute, req.EndTime)
	if !ok {
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), garageID, day, start, end)
	if err != nil {
		logger.Error("Failed to create availability slot",
			zap.String("garageID", garageID), zap.String("day", string(day)), zap.Error(err))
		respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewAvailabilitySlotResponse(*slot))
}

// UpdateSlotHandler handles PUT /api/garages/availability/:slotId. Absent
// fields keep their current values.
func (h *AvailabilityHandler) UpdateSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var update models.SlotUpdate
	if req.DayOfWeek != nil {
		day, err := models.ParseDayOfWeek(*req.DayOfWeek)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		update.DayOfWeek = &day
	}
	if req.StartMinute != nil || req.StartTime != nil {
		clock := ""
		if req.StartTime != nil {
			clock = *req.StartTime
		}
		start, ok := resolveMinute(c, "startTime", req.StartMinute, clock)
		if !ok {
			return
		}
		update.StartMinute = &start
	}
	if req.EndMinute != nil || req.EndTime != nil {
		clock := ""
		if req.EndTime != nil {
			clock = *req.EndTime
		}
		end, ok := resolveMinute(c, "endTime", req.EndMinute, clock)
		if !ok {
			return
		}
		update.EndMinute = &end
	}

	slot, err := h.Service.UpdateSlot(c.Request.Context(), garageID, c.Param("slotId"), update)
	if err != nil {
		logger.Error("Failed to update availability slot",
			zap.String("garageID", garageID), zap.String("slotID", c.Param("slotId")), zap.Error(err))
		respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAvailabilitySlotResponse(*slot))
}

// DeleteSlotHandler handles DELETE /api/garages/availability/:slotId.
func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.DeleteSlot(c.Request.Context(), garageID, c.Param("slotId")); err != nil {
		logger.Error("Failed to delete availability slot",
			zap.String("garageID", garageID), zap.String("slotID", c.Param("slotId")), zap.Error(err))
		respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability slot deleted"})
}

// GarageScheduleHandler handles GET /api/drivers/garages/:garageId/availability,
// the driver-facing read-only view of a garage's published windows.
func (h *AvailabilityHandler) GarageScheduleHandler(c *gin.Context) {
	if _, ok := middleware.ActorID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := parseDayFilter(c)
	if !ok {
		return
	}

	slots, err := h.Service.ListSlots(c.Request.Context(), c.Param("garageId"), day)
	if err != nil {
		respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAvailabilitySlotResponses(slots))
}
