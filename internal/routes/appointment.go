package routes

import (
	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
)

type AppointmentRoutes struct {
	handler *handlers.AppointmentHandler
}

func NewAppointmentRoutes(handler *handlers.AppointmentHandler) *AppointmentRoutes {
	return &AppointmentRoutes{handler: handler}
}

func (r *AppointmentRoutes) RegisterRoutes(router *gin.Engine) {
	appointments := router.Group("/appointments")
	{
		appointments.GET("", r.handler.List)
		appointments.POST("", r.handler.Create)
		appointments.GET("/:id", r.handler.Get)
		appointments.PUT("/:id", r.handler.Update)
		appointments.DELETE("/:id", r.handler.Delete)
	}
}
