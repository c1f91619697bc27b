package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/responses"
	"legalcase/internal/services"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles GET /appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointmentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Get handles GET /appointments/:id.
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	a, err := h.appointmentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

// Create handles POST /appointments. A nonexistent client or lawyer
// reference fails the whole insert; no partial row persists.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req services.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	a, err := h.appointmentService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment added successfully",
		"appointment": a,
	})
}

// Update handles PUT /appointments/:id with partial-update semantics.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	a, err := h.appointmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully",
		"appointment": a,
	})
}

// Delete handles DELETE /appointments/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.appointmentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
