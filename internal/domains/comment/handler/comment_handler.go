package handler

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/comment"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

// CommentHandler handles HTTP requests for the comment domain.
type CommentHandler struct {
	service comment.Service
}

// NewCommentHandler - Constructor with DI
func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Post handles POST /api/books/:bookId/comments
func (h *CommentHandler) Post(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	bookID, ok := pathID(c, "bookId", "invalid book id")
	if !ok {
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Post(c.Request.Context(), username, bookID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetAll handles GET /api/books/:bookId/comments
func (h *CommentHandler) GetAll(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	bookID, ok := pathID(c, "bookId", "invalid book id")
	if !ok {
		return
	}

	result, err := h.service.GetAll(c.Request.Context(), username, bookID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetOne handles GET /api/books/:bookId/comments/:commentId
func (h *CommentHandler) GetOne(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	bookID, ok := pathID(c, "bookId", "invalid book id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId", "invalid comment id")
	if !ok {
		return
	}

	result, err := h.service.GetOne(c.Request.Context(), username, bookID, commentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Update handles PATCH /api/books/:bookId/comments/:commentId
func (h *CommentHandler) Update(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	bookID, ok := pathID(c, "bookId", "invalid book id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId", "invalid comment id")
	if !ok {
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), username, bookID, commentID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Remove handles DELETE /api/books/:bookId/comments/:commentId
func (h *CommentHandler) Remove(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	bookID, ok := pathID(c, "bookId", "invalid book id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId", "invalid comment id")
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), username, bookID, commentID); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, true)
}

func pathID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.BadRequest(c, message)
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP status codes. A book owned by
// another user surfaces as the same not-found as a missing one.
func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, comment.ErrCommentNotFound),
		errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("unhandled comment error", err)
		response.InternalServerError(c, "internal server error")
	}
}
