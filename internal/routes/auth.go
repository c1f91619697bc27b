package routes

import (
	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
	"legalcase/internal/middlewares"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
	secret  []byte
}

func NewAuthRoutes(handler *handlers.AuthHandler, secret []byte) *AuthRoutes {
	return &AuthRoutes{handler: handler, secret: secret}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/admin/register", r.handler.Register)
	router.POST("/admin/login", r.handler.Login)

	// Protected routes
	authenticated := router.Group("/")
	authenticated.Use(middlewares.Authenticate(r.secret))
	{
		authenticated.POST("/admin/logout", r.handler.Logout)
		authenticated.GET("/admin/protected", r.handler.Protected)
		authenticated.GET("/verify-token", r.handler.VerifyToken)

		// Owner-checked: the token identity must match the path id
		profile := authenticated.Group("/profile")
		profile.Use(middlewares.RequireOwner("admin_id"))
		profile.GET("/:admin_id", r.handler.GetProfile)
		profile.PUT("/:admin_id", r.handler.UpdateProfile)
	}
}
