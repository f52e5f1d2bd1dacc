package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartaid/smartaid-backend/internal/middleware"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
	"github.com/smartaid/smartaid-backend/internal/response"
	"github.com/smartaid/smartaid-backend/internal/service"
	"github.com/smartaid/smartaid-backend/internal/validator"
)

// AuthHandler handles staff authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	staffRepo   *repository.StaffRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, staffRepo *repository.StaffRepository) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		staffRepo:   staffRepo,
	}
}

// StaffLogin godoc
// POST /api/v1/auth/staff/login
// Validates username + password, returns JWT with role permissions.
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req model.StaffLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	staff, err := h.staffRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(staff.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateStaffToken(staff)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"staff": gin.H{
			"id":       staff.ID,
			"username": staff.Username,
			"name":     staff.Name,
			"role":     staff.Role,
		},
		"permissions": model.PermissionsForRole(staff.Role),
	})
}

// GetStaffProfile godoc
// GET /api/v1/auth/staff/me
// Returns the profile of the currently authenticated staff user.
func (h *AuthHandler) GetStaffProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	staff, err := h.staffRepo.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"staff": gin.H{
			"id":       staff.ID,
			"username": staff.Username,
			"name":     staff.Name,
			"role":     staff.Role,
		},
		"permissions": model.PermissionsForRole(staff.Role),
	})
}
