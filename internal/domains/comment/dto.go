package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest - POST /api/books/:bookId/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 1000),
		),
	)
}

// UpdateCommentRequest - PATCH /api/books/:bookId/comments/:commentId
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.NilOrNotEmpty, validation.Length(1, 1000)),
	)
}

// CommentResponse is the public comment shape.
type CommentResponse struct {
	BookID    int64     `json:"bookId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse converts a Comment entity to its public shape.
func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		BookID:    c.BookID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
