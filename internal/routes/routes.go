package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/handlers"
	"legalcase/internal/monitoring"
)

// Handlers bundles every resource handler for registration.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Lawyer      *handlers.LawyerHandler
	Client      *handlers.ClientHandler
	Case        *handlers.CaseHandler
	Appointment *handlers.AppointmentHandler
	Report      *handlers.ReportHandler
}

// RegisterRoutes wires all resource routes onto the engine. The JWT secret
// feeds the auth gate on protected routes.
func RegisterRoutes(router *gin.Engine, secret []byte, h Handlers) {
	authRoutes := NewAuthRoutes(h.Auth, secret)
	authRoutes.RegisterRoutes(router)

	lawyerRoutes := NewLawyerRoutes(h.Lawyer)
	lawyerRoutes.RegisterRoutes(router)

	clientRoutes := NewClientRoutes(h.Client)
	clientRoutes.RegisterRoutes(router)

	caseRoutes := NewCaseRoutes(h.Case)
	caseRoutes.RegisterRoutes(router)

	appointmentRoutes := NewAppointmentRoutes(h.Appointment)
	appointmentRoutes.RegisterRoutes(router)

	reportRoutes := NewReportRoutes(h.Report, secret)
	reportRoutes.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(monitoring.Handler()))
}
