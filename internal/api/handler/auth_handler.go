package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/api/response"
	"github.com/adiweb12/Devwatsee/internal/service"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new member account.
// @Summary Sign a new member up
// @Description Creates a member account; username and email must be unused
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "signup payload"
// @Success 200 {object} response.Body "account created"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 409 {object} response.Body "username or email taken"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.authService.Signup(&req); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, "Username already exists")
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "Email already exists")
		default:
			logger.Error("Signup failed", zap.String("username", req.Username), zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c)
}

// Login issues a bearer token for valid member credentials.
// @Summary Log a member in
// @Description Verifies the credential pair and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "login payload"
// @Success 200 {object} dto.LoginResponse "token issued"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 401 {object} response.Body "invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, dto.LoginResponse{Success: true, AccessToken: token})
}

// ForgotPassword resets the account behind the email to a fresh random
// password and mails it out.
// @Summary Reset a forgotten password
// @Description Generates a new password and sends it to the account's email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "account email"
// @Success 200 {object} response.Body "reset mail sent"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 404 {object} response.Body "no account with that email"
// @Router /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.authService.ResetPassword(req.Email); err != nil {
		if errors.Is(err, service.ErrEmailNotFound) {
			response.NotFound(c, "Email not found")
			return
		}
		logger.Error("Password reset failed", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c)
}
