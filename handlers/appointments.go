// File: handlers/appointments.go
package handlers

import (
	"net/http"
	"time"

	"garagehub/middleware"
	"garagehub/models"
	appointmentSvc "garagehub/services/appointment"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the appointment lifecycle over HTTP. Driver
// endpoints live in this file, garage endpoints in garageAppointments.go.
type AppointmentHandler struct {
	Service appointmentSvc.AppointmentService
}

// parseStatusFilter reads the optional ?status= query parameter.
func parseStatusFilter(c *gin.Context) (*models.AppointmentStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	status, err := models.ParseAppointmentStatus(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &status, true
}

// parseScheduledAt parses an RFC 3339 timestamp from a request payload.
func parseScheduledAt(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduledAt is required"})
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduledAt must be an RFC 3339 timestamp"})
		return time.Time{}, false
	}
	return t, true
}

// BookAppointmentHandler handles POST /api/drivers/appointments.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	driverID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.GarageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "garageId is required"})
		return
	}
	scheduledAt, ok := parseScheduledAt(c, req.ScheduledAt)
	if !ok {
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), driverID, req.GarageID, scheduledAt, req.ServiceDescription)
	if err != nil {
		logger.Error("Failed to book appointment",
			zap.String("driverID", driverID), zap.String("garageID", req.GarageID), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewAppointmentResponse(*appt))
}

// ListDriverAppointmentsHandler handles GET /api/drivers/appointments.
func (h *AppointmentHandler) ListDriverAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	driverID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	status, ok := parseStatusFilter(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListForDriver(c.Request.Context(), driverID, status)
	if err != nil {
		logger.Error("Failed to list driver appointments", zap.String("driverID", driverID), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponses(appts))
}

// GetDriverAppointmentHandler handles GET /api/drivers/appointments/:id.
func (h *AppointmentHandler) GetDriverAppointmentHandler(c *gin.Context) {
	driverID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Service.GetForDriver(c.Request.Context(), driverID, c.Param("id"))
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}

// RescheduleAppointmentHandler handles PUT /api/drivers/appointments/:id/reschedule.
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	driverID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	newAt, ok := parseScheduledAt(c, req.ScheduledAt)
	if !ok {
		return
	}

	appt, err := h.Service.Reschedule(c.Request.Context(), driverID, c.Param("id"), newAt)
	if err != nil {
		logger.Error("Failed to reschedule appointment",
			zap.String("driverID", driverID), zap.String("appointmentID", c.Param("id")), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}

// CancelAppointmentHandler handles PUT /api/drivers/appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	driverID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Service.Cancel(c.Request.Context(), driverID, c.Param("id"))
	if err != nil {
		logger.Error("Failed to cancel appointment",
			zap.String("driverID", driverID), zap.String("appointmentID", c.Param("id")), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}
