package category

import "context"

// Service is the business logic contract for categories.
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
	Get(ctx context.Context, id int64) (*CategoryResponse, error)
	GetAll(ctx context.Context) ([]CategoryResponse, error)
	GetWithBooks(ctx context.Context, id int64) (*CategoryResponse, error)
	Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryResponse, error)

	// Exists reports whether a category with the given name exists.
	// Used to validate the category reference on book create/update.
	Exists(ctx context.Context, name string) (bool, error)

	// ResolveName maps a category name to its id.
	// Returns ErrCategoryNotFound for an unknown name.
	ResolveName(ctx context.Context, name string) (int64, error)
}
