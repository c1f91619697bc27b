package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcase/internal/middlewares"
	"legalcase/internal/models"
	"legalcase/internal/responses"
	"legalcase/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /admin/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := models.Required(
		models.RequiredField{Name: "name", Value: req.Name},
		models.RequiredField{Name: "email", Value: req.Email},
		models.RequiredField{Name: "password", Value: req.Password},
	); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing required fields")
		return
	}

	admin, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			responses.Fail(c, http.StatusBadRequest, nil, "Email already exists")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Error registering admin")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Admin registered successfully",
		"admin_id": admin.AdminID,
	})
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := models.Required(
		models.RequiredField{Name: "email", Value: req.Email},
		models.RequiredField{Name: "password", Value: req.Password},
	); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing required fields")
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrTooManyAttempts) {
			responses.Fail(c, http.StatusTooManyRequests, nil, "Too many failed login attempts")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.Fail(c, http.StatusUnauthorized, nil, "Invalid email or password")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    token,
		"admin_id": admin.AdminID,
		"name":     admin.Name,
		"email":    admin.Email,
	})
}

// Logout handles POST /admin/logout. There is no server-side revocation
// list: the token stays valid until its expiry and logout is a client-side
// action.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully"})
}

// Protected handles GET /admin/protected.
func (h *AuthHandler) Protected(c *gin.Context) {
	adminID, ok := middlewares.AdminID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	admin, err := h.authService.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "You have access to your data",
		"admin_name": admin.Name,
	})
}

// VerifyToken handles GET /verify-token. Reaching the handler means the auth
// gate already accepted the token.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	adminID, ok := middlewares.AdminID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"admin_id": adminID,
	})
}

// GetProfile handles GET /profile/:admin_id (owner-checked).
func (h *AuthHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "admin_id")
	if !ok {
		return
	}

	admin, err := h.authService.GetAdmin(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, admin)
}

// UpdateProfile handles PUT /profile/:admin_id (owner-checked, partial).
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "admin_id")
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	admin, err := h.authService.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"admin":   admin,
	})
}
