package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/responses"
	"legalcase/internal/services"
)

type LawyerHandler struct {
	lawyerService *services.LawyerService
}

func NewLawyerHandler(lawyerService *services.LawyerService) *LawyerHandler {
	return &LawyerHandler{lawyerService: lawyerService}
}

// List handles GET /lawyers.
func (h *LawyerHandler) List(c *gin.Context) {
	lawyers, err := h.lawyerService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Lawyer not found")
		return
	}
	c.JSON(http.StatusOK, lawyers)
}

// Get handles GET /lawyers/:id.
func (h *LawyerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	lawyer, err := h.lawyerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Lawyer not found")
		return
	}
	c.JSON(http.StatusOK, lawyer)
}

// Create handles POST /lawyers.
func (h *LawyerHandler) Create(c *gin.Context) {
	var req services.CreateLawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	lawyer, err := h.lawyerService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Lawyer not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Lawyer added successfully",
		"lawyer":  lawyer,
	})
}

// Update handles PUT /lawyers/:id with partial-update semantics.
func (h *LawyerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateLawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	lawyer, err := h.lawyerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Lawyer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lawyer updated successfully",
		"lawyer":  lawyer,
	})
}

// Delete handles DELETE /lawyers/:id. Appointments referencing the lawyer
// are cascade-deleted by the store.
func (h *LawyerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.lawyerService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Lawyer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lawyer deleted successfully"})
}
