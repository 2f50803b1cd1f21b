package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEquipment(c *ginext.Context)
	GetEquipment(c *ginext.Context)
	ListEquipment(c *ginext.Context)
	SetEquipmentAvailability(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ForceCompleteBooking(c *ginext.Context)
	CreateMaintenance(c *ginext.Context)
	CompleteMaintenance(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Equipment
		api.POST("/equipment", h.CreateEquipment)
		api.GET("/equipment", h.ListEquipment)
		api.GET("/equipment/:id", h.GetEquipment)
		api.PATCH("/equipment/:id/availability", h.SetEquipmentAvailability)
		api.GET("/equipment/:id/available-units", h.GetAvailability)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/force-complete", h.ForceCompleteBooking)

		// Maintenance
		api.POST("/maintenance", h.CreateMaintenance)
		api.POST("/maintenance/:id/complete", h.CompleteMaintenance)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
