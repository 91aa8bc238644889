package handler

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/category"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

// CategoryHandler handles HTTP requests for the category domain.
type CategoryHandler struct {
	service category.Service
}

// NewCategoryHandler - Constructor with DI
func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /api/category (admin only)
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Get handles GET /api/category/:categoryId
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetBooks handles GET /api/category/:categoryId/books
func (h *CategoryHandler) GetBooks(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	result, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetAll handles GET /api/category
func (h *CategoryHandler) GetAll(c *gin.Context) {
	result, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Update handles PATCH /api/category/:categoryId (admin only)
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *CategoryHandler) categoryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP status codes.
func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, category.ErrCategoryExists):
		response.Conflict(c, err.Error())

	default:
		logger.Error("unhandled category error", err)
		response.InternalServerError(c, "internal server error")
	}
}
