package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/comment"
)

// Pagination defaults. The filtered listing and the free-text search
// deliberately stay two separate operations with separate defaults:
// they differ in page size and in how filters combine (AND vs OR).
const (
	DefaultPage       = 1
	DefaultSize       = 10
	SimpleSearchSize  = 20
	SimpleSearchPages = 10000
)

// CreateBookRequest - POST /api/books
type CreateBookRequest struct {
	Title        string `json:"title"`
	Year         int    `json:"year"`
	Author       string `json:"author"`
	Publisher    string `json:"publisher"`
	IsFinished   *bool  `json:"isFinished"`
	CategoryName string `json:"categoryName"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 100),
		),
		// Upper bound is the current calendar year, computed per call.
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Min(1),
			validation.Max(time.Now().Year()),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Publisher,
			validation.Required.Error("publisher is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.IsFinished,
			validation.NotNil.Error("isFinished is required"),
		),
		validation.Field(&r.CategoryName,
			validation.Required.Error("categoryName is required"),
			validation.Length(1, 100),
		),
	)
}

// UpdateBookRequest - PATCH /api/books/:bookId, every field optional.
type UpdateBookRequest struct {
	Title        *string `json:"title,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Author       *string `json:"author,omitempty"`
	Publisher    *string `json:"publisher,omitempty"`
	IsFinished   *bool   `json:"isFinished,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Year, validation.Min(1), validation.Max(time.Now().Year())),
		validation.Field(&r.Author, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Publisher, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.CategoryName, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// SearchBooksRequest - GET /api/books; every filter optional, combined
// with AND.
type SearchBooksRequest struct {
	Title        string `form:"title"`
	Author       string `form:"author"`
	Publisher    string `form:"publisher"`
	Year         *int   `form:"year"`
	IsFinished   *bool  `form:"isFinished"`
	CategoryName string `form:"categoryName"`
	Page         int    `form:"page"`
	Size         int    `form:"size"`
}

// Normalize applies the pagination defaults.
func (r *SearchBooksRequest) Normalize() {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.Size == 0 {
		r.Size = DefaultSize
	}
}

func (r SearchBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 100)),
		validation.Field(&r.Author, validation.Length(1, 100)),
		validation.Field(&r.Publisher, validation.Length(1, 100)),
		validation.Field(&r.Year, validation.Min(1), validation.Max(time.Now().Year())),
		validation.Field(&r.CategoryName, validation.Length(1, 100)),
		validation.Field(&r.Page, validation.Min(1)),
		validation.Field(&r.Size, validation.Min(1)),
	)
}

// SimpleSearchRequest - GET /api/books/search. Page size is fixed to
// SimpleSearchSize no matter what the client sends.
type SimpleSearchRequest struct {
	Search string `form:"q"`
	Page   int    `form:"page"`
}

func (r *SimpleSearchRequest) Normalize() {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
}

func (r SimpleSearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Search,
			validation.Required.Error("search is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Page, validation.Min(1), validation.Max(SimpleSearchPages)),
	)
}

// BookResponse is the public book shape. CategoryName carries the
// resolved display name, not the stored id. Comments is attached only
// on single-book reads.
type BookResponse struct {
	ID           int64                     `json:"id"`
	Title        string                    `json:"title"`
	Author       string                    `json:"author"`
	Publisher    string                    `json:"publisher"`
	Year         int                       `json:"year"`
	IsFinished   bool                      `json:"isFinished"`
	CategoryName string                    `json:"categoryName"`
	Comments     []comment.CommentResponse `json:"comments,omitempty"`
}
