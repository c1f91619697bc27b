package routes

import (
	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
)

type ClientRoutes struct {
	handler *handlers.ClientHandler
}

func NewClientRoutes(handler *handlers.ClientHandler) *ClientRoutes {
	return &ClientRoutes{handler: handler}
}

func (r *ClientRoutes) RegisterRoutes(router *gin.Engine) {
	clients := router.Group("/clients")
	{
		clients.GET("", r.handler.List)
		clients.POST("", r.handler.Create)
		clients.GET("/:id", r.handler.Get)
		clients.PUT("/:id", r.handler.Update)
		clients.DELETE("/:id", r.handler.Delete)
	}
}
