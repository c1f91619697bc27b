package routes

import (
	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
)

type LawyerRoutes struct {
	handler *handlers.LawyerHandler
}

func NewLawyerRoutes(handler *handlers.LawyerHandler) *LawyerRoutes {
	return &LawyerRoutes{handler: handler}
}

func (r *LawyerRoutes) RegisterRoutes(router *gin.Engine) {
	lawyers := router.Group("/lawyers")
	{
		lawyers.GET("", r.handler.List)
		lawyers.POST("", r.handler.Create)
		lawyers.GET("/:id", r.handler.Get)
		lawyers.PUT("/:id", r.handler.Update)
		lawyers.DELETE("/:id", r.handler.Delete)
	}
}
