// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/middleware"
	"trekheaven/internal/models"
	"trekheaven/internal/service"
	"trekheaven/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for account operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an unverified account and email a 6-digit verification code
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.RegisterResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Verify godoc
// @Summary      Verify an email address
// @Description  Consume an emailed verification code and log the user in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.VerifyRequest  true  "Email and 6-digit code"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req models.VerifyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Verify(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidVerificationCode) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate a verified user and return a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, apperrors.ErrEmailNotVerified):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, result)
}

// Me godoc
// @Summary      Current user profile
// @Description  Return the authenticated user's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, middleware.CurrentUser(c))
}

// RequestProfileUpdate godoc
// @Summary      Request a profile-update code
// @Description  Email the authenticated user a fresh verification code gating a password change
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/request-profile-update [post]
func (h *AuthHandler) RequestProfileUpdate(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.service.RequestProfileUpdate(c.Request.Context(), user.ID); err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "Verification code sent to your email."})
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Change the authenticated user's name and/or password. A password change requires the current password and a verification code.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.UpdateProfileRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)

	result, err := h.service.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidVerificationCode):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, apperrors.ErrWrongPassword):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, result)
}
