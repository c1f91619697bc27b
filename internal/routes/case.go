package routes

import (
	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
)

type CaseRoutes struct {
	handler *handlers.CaseHandler
}

func NewCaseRoutes(handler *handlers.CaseHandler) *CaseRoutes {
	return &CaseRoutes{handler: handler}
}

func (r *CaseRoutes) RegisterRoutes(router *gin.Engine) {
	cases := router.Group("/cases")
	{
		cases.GET("", r.handler.List)
		cases.POST("", r.handler.Create)
		cases.GET("/:id", r.handler.Get)
		cases.PUT("/:id", r.handler.Update)
		cases.DELETE("/:id", r.handler.Delete)
	}
}
