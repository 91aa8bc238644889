package handler

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

// UserHandler handles HTTP requests for the user domain.
type UserHandler struct {
	service user.Service
}

// NewUserHandler - Constructor with DI
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Login handles POST /api/user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Get handles GET /api/user/current
func (h *UserHandler) Get(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	result, err := h.service.Get(c.Request.Context(), username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Update handles PATCH /api/user/current
func (h *UserHandler) Update(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), username, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout handles DELETE /api/user/current
func (h *UserHandler) Logout(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	result, err := h.service.Logout(c.Request.Context(), username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("User %s has been logged out", result))
}

// handleError maps domain errors to HTTP status codes.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidToken):
		response.Unauthorized(c, err.Error())

	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, user.ErrUsernameTaken):
		response.Conflict(c, err.Error())

	default:
		logger.Error("unhandled user error", err)
		response.InternalServerError(c, "internal server error")
	}
}
