package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/responses"
	"legalcase/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Client not found")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create handles POST /clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Client not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client added successfully",
		"client":  client,
	})
}

// Update handles PUT /clients/:id with partial-update semantics.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

// Delete handles DELETE /clients/:id. Appointments referencing the client
// are cascade-deleted by the store.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
