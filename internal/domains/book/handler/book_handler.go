package handler

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

// BookHandler handles HTTP requests for the book domain.
type BookHandler struct {
	service book.Service
}

// NewBookHandler - Constructor with DI
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), username, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// List handles GET /api/books with the AND-combined filters.
func (h *BookHandler) List(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	var req book.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	books, paging, err := h.service.List(c.Request.Context(), username, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKWithPaging(c, books, paging)
}

// Search handles GET /api/books/search with the free-text query.
func (h *BookHandler) Search(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	var req book.SimpleSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	books, paging, err := h.service.Search(c.Request.Context(), username, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKWithPaging(c, books, paging)
}

// GetOne handles GET /api/books/:bookId
func (h *BookHandler) GetOne(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.service.GetOne(c.Request.Context(), username, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Update handles PATCH /api/books/:bookId
func (h *BookHandler) Update(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), username, id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Remove handles DELETE /api/books/:bookId. The response echoes the
// book's last known values.
func (h *BookHandler) Remove(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.service.Remove(c.Request.Context(), username, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *BookHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP status codes. An unknown
// category name on create or update is the caller's mistake, so it
// maps to 400 rather than 404.
func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, category.ErrCategoryNotFound):
		response.BadRequest(c, err.Error())

	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, book.ErrBookTitleExists):
		response.Conflict(c, err.Error())

	default:
		logger.Error("unhandled book error", err)
		response.InternalServerError(c, "internal server error")
	}
}
