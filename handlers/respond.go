// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	appointmentSvc "garagehub/services/appointment"
	availabilitySvc "garagehub/services/availability"

	"github.com/gin-gonic/gin"
)

// respondAppointmentError translates an appointment service error into the
// matching HTTP status and payload.
func respondAppointmentError(c *gin.Context, err error) {
	var validationErr appointmentSvc.ValidationError
	var transitionErr appointmentSvc.TransitionError
	switch {
	case errors.Is(err, appointmentSvc.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	case errors.Is(err, appointmentSvc.ErrGarageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Garage not found"})
	case errors.Is(err, appointmentSvc.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, appointmentSvc.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": transitionErr.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondSlotError translates an availability service error into the matching
// HTTP status and payload.
func respondSlotError(c *gin.Context, err error) {
	var validationErr availabilitySvc.ValidationError
	switch {
	case errors.Is(err, availabilitySvc.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Availability slot not found"})
	case errors.Is(err, availabilitySvc.ErrSlotOverlap):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
