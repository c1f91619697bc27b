package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/responses"
	"legalcase/internal/services"
)

type CaseHandler struct {
	caseService *services.CaseService
}

func NewCaseHandler(caseService *services.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// List handles GET /cases.
func (h *CaseHandler) List(c *gin.Context) {
	cases, err := h.caseService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Case not found")
		return
	}
	c.JSON(http.StatusOK, cases)
}

// Get handles GET /cases/:id.
func (h *CaseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cs, err := h.caseService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Case not found")
		return
	}
	c.JSON(http.StatusOK, cs)
}

// Create handles POST /cases.
func (h *CaseHandler) Create(c *gin.Context) {
	var req services.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	cs, err := h.caseService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Case not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Case added successfully",
		"case":    cs,
	})
}

// Update handles PUT /cases/:id with partial-update semantics.
func (h *CaseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	cs, err := h.caseService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Case not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Case updated successfully",
		"case":    cs,
	})
}

// Delete handles DELETE /cases/:id.
func (h *CaseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.caseService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Case not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Case deleted successfully"})
}
