// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for routing.
type HandlerBundle struct {
	// Driver appointment endpoints
	BookAppointmentHandler        gin.HandlerFunc
	ListDriverAppointmentsHandler gin.HandlerFunc
	GetDriverAppointmentHandler   gin.HandlerFunc
	RescheduleAppointmentHandler  gin.HandlerFunc
	CancelAppointmentHandler      gin.HandlerFunc

	// Garage appointment endpoints
	ListGarageAppointmentsHandler gin.HandlerFunc
	GetGarageAppointmentHandler   gin.HandlerFunc
	ApproveAppointmentHandler     gin.HandlerFunc
	RejectAppointmentHandler      gin.HandlerFunc
	UpdateServiceStatusHandler    gin.HandlerFunc

	// Garage availability endpoints
	ListSlotsHandler  gin.HandlerFunc
	GetSlotHandler    gin.HandlerFunc
	CreateSlotHandler gin.HandlerFunc
	UpdateSlotHandler gin.HandlerFunc
	DeleteSlotHandler gin.HandlerFunc

	// Driver-facing schedule view
	GarageScheduleHandler gin.HandlerFunc
}

// NewHandlerBundle wires the endpoint handlers onto their services.
func NewHandlerBundle(appointments *AppointmentHandler, availability *AvailabilityHandler) *HandlerBundle {
	return &HandlerBundle{
		BookAppointmentHandler:        appointments.BookAppointmentHandler,
		ListDriverAppointmentsHandler: appointments.ListDriverAppointmentsHandler,
		GetDriverAppointmentHandler:   appointments.GetDriverAppointmentHandler,
		RescheduleAppointmentHandler:  appointments.RescheduleAppointmentHandler,
		CancelAppointmentHandler:      appointments.CancelAppointmentHandler,

		ListGarageAppointmentsHandler: appointments.ListGarageAppointmentsHandler,
		GetGarageAppointmentHandler:   appointments.GetGarageAppointmentHandler,
		ApproveAppointmentHandler:     appointments.ApproveAppointmentHandler,
		RejectAppointmentHandler:      appointments.RejectAppointmentHandler,
		UpdateServiceStatusHandler:    appointments.UpdateServiceStatusHandler,

		ListSlotsHandler:  availability.ListSlotsHandler,
		GetSlotHandler:    availability.GetSlotHandler,
		CreateSlotHandler: availability.CreateSlotHandler,
		UpdateSlotHandler: availability.UpdateSlotHandler,
		DeleteSlotHandler: availability.DeleteSlotHandler,

		GarageScheduleHandler: availability.GarageScheduleHandler,
	}
}
