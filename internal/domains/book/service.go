package book

import (
	"context"

	"library-backend/internal/shared/response"
)

// Service exposes the book use cases. Every call is scoped by the
// owning username taken from the authenticated request.
type Service interface {
	Create(ctx context.Context, username string, req *CreateBookRequest) (*BookResponse, error)
	List(ctx context.Context, username string, req *SearchBooksRequest) ([]BookResponse, *response.Paging, error)
	Search(ctx context.Context, username string, req *SimpleSearchRequest) ([]BookResponse, *response.Paging, error)
	GetOne(ctx context.Context, username string, id int64) (*BookResponse, error)
	Update(ctx context.Context, username string, id int64, req *UpdateBookRequest) (*BookResponse, error)
	Remove(ctx context.Context, username string, id int64) (*BookResponse, error)
}
