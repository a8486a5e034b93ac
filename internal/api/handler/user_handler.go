package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/api/middleware"
	"github.com/adiweb12/Devwatsee/internal/api/response"
	"github.com/adiweb12/Devwatsee/internal/service"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GetProfile returns the caller's own record.
// @Summary Get own profile
// @Description Returns username, name and email of the logged-in member
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse "profile"
// @Failure 401 {object} response.Body "missing or invalid token"
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Missing or invalid token")
		return
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		logger.Error("Get profile failed", zap.Int64("user_id", userID), zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, profile)
}

// UpdateProfile sets the caller's name and email.
// @Summary Update own profile
// @Description Sets name and email of the logged-in member
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "new name and email"
// @Success 200 {object} response.Body "profile updated"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 409 {object} response.Body "email taken by another account"
// @Router /profile/update [post]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.authService.UpdateProfile(userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "Email already exists")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "Not found")
		default:
			logger.Error("Update profile failed", zap.Int64("user_id", userID), zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c)
}

// ChangePassword rotates the caller's password.
// @Summary Change own password
// @Description Verifies the old password and stores the new one
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "old and new password"
// @Success 200 {object} response.Body "password changed"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 401 {object} response.Body "old password wrong"
// @Router /change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.authService.ChangePassword(userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(c, "Wrong password")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "Not found")
		default:
			logger.Error("Change password failed", zap.Int64("user_id", userID), zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c)
}
