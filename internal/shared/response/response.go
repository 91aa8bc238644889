package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every successful call returns.
type Response struct {
	Data   interface{} `json:"data"`
	Paging *Paging     `json:"paging,omitempty"`
}

// Paging describes one page of a list response.
// Size is the number of rows actually returned, not the requested size.
type Paging struct {
	Size        int `json:"size"`
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
}

type errorBody struct {
	Error string `json:"error"`
}

// OK writes a 200 with the data envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Data: data})
}

// OKWithPaging writes a 200 with data and paging.
func OKWithPaging(c *gin.Context, data interface{}, paging *Paging) {
	c.JSON(http.StatusOK, Response{Data: data, Paging: paging})
}

// Error writes a bare status + message body.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Error: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
