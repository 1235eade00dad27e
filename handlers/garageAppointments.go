// File: handlers/garageAppointments.go
package handlers

import (
	"net/http"

	"garagehub/middleware"
	"garagehub/models"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListGarageAppointmentsHandler handles GET /api/garages/appointments.
func (h *AppointmentHandler) ListGarageAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	status, ok := parseStatusFilter(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListForGarage(c.Request.Context(), garageID, status)
	if err != nil {
		logger.Error("Failed to list garage appointments", zap.String("garageID", garageID), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponses(appts))
}

// GetGarageAppointmentHandler handles GET /api/garages/appointments/:id.
func (h *AppointmentHandler) GetGarageAppointmentHandler(c *gin.Context) {
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Service.GetForGarage(c.Request.Context(), garageID, c.Param("id"))
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}

// ApproveAppointmentHandler handles PUT /api/garages/appointments/:id/approve.
func (h *AppointmentHandler) ApproveAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Service.Approve(c.Request.Context(), garageID, c.Param("id"))
	if err != nil {
		logger.Error("Failed to approve appointment",
			zap.String("garageID", garageID), zap.String("appointmentID", c.Param("id")), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}

// RejectAppointmentHandler handles PUT /api/garages/appointments/:id/reject.
func (h *AppointmentHandler) RejectAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Service.Reject(c.Request.Context(), garageID, c.Param("id"))
	if err != nil {
		logger.Error("Failed to reject appointment",
			zap.String("garageID", garageID), zap.String("appointmentID", c.Param("id")), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}

// UpdateServiceStatusHandler handles PUT /api/garages/appointments/:id/status.
// The payload names either IN_SERVICE or COMPLETED.
func (h *AppointmentHandler) UpdateServiceStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	to, err := models.ParseAppointmentStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.UpdateServiceStatus(c.Request.Context(), garageID, c.Param("id"), to)
	if err != nil {
		logger.Error("Failed to update service status",
			zap.String("garageID", garageID), zap.String("appointmentID", c.Param("id")),
			zap.String("status", req.Status), zap.Error(err))
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentResponse(*appt))
}
