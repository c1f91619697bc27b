package routes

import (
	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
	"legalcase/internal/middlewares"
)

type ReportRoutes struct {
	handler *handlers.ReportHandler
	secret  []byte
}

func NewReportRoutes(handler *handlers.ReportHandler, secret []byte) *ReportRoutes {
	return &ReportRoutes{handler: handler, secret: secret}
}

func (r *ReportRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/view/:table", middlewares.Authenticate(r.secret), r.handler.View)
	router.GET("/dashboard", r.handler.Dashboard)
}
