package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/repositories"
	"legalcase/internal/responses"
	"legalcase/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// View handles GET /view/:table for the known report tables.
func (h *ReportHandler) View(c *gin.Context) {
	table := c.Param("table")

	rows, err := h.reportService.View(c.Request.Context(), table)
	if err != nil {
		if errors.Is(err, repositories.ErrUnknownTable) {
			responses.Fail(c, http.StatusBadRequest, nil, "Unknown table name")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table": table,
		"rows":  rows,
	})
}

// Dashboard handles GET /dashboard.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	counts, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, counts)
}
