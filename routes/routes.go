package routes

import (
	"net/http"
	"time"

	"garagehub/handlers"
	"garagehub/middleware"
	"garagehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDriverRoutes registers driver-side endpoints: booking and managing
// their own appointments, plus the read-only garage schedule view.
func RegisterDriverRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drivers")
	{
		api.Use(middleware.RequireActor(middleware.RoleDriver))
		api.POST("/appointments", hb.BookAppointmentHandler)
		api.GET("/appointments", hb.ListDriverAppointmentsHandler)
		api.GET("/appointments/:id", hb.GetDriverAppointmentHandler)
		api.PUT("/appointments/:id/reschedule", hb.RescheduleAppointmentHandler)
		api.PUT("/appointments/:id/cancel", hb.CancelAppointmentHandler)
		api.GET("/garages/:garageId/availability", hb.GarageScheduleHandler)
	}
}

// RegisterGarageRoutes registers garage-side endpoints: working the incoming
// appointment queue and managing the weekly availability schedule.
func RegisterGarageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/garages")
	{
		api.Use(middleware.RequireActor(middleware.RoleGarage))
		api.GET("/appointments", hb.ListGarageAppointmentsHandler)
		api.GET("/appointments/:id", hb.GetGarageAppointmentHandler)
		api.PUT("/appointments/:id/approve", hb.ApproveAppointmentHandler)
		api.PUT("/appointments/:id/reject", hb.RejectAppointmentHandler)
		api.PUT("/appointments/:id/status", hb.UpdateServiceStatusHandler)

		api.GET("/availability", hb.ListSlotsHandler)
		api.POST("/availability", hb.CreateSlotHandler)
		api.GET("/availability/:slotId", hb.GetSlotHandler)
		api.PUT("/availability/:slotId", hb.UpdateSlotHandler)
		api.DELETE("/availability/:slotId", hb.DeleteSlotHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Actor-ID", "X-Actor-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterDriverRoutes(r, hb)
	RegisterGarageRoutes(r, hb)
}
