package category

import "context"

// Repository is the data access contract for categories.
type Repository interface {
	// Create returns ErrCategoryExists on a duplicate name.
	Create(ctx context.Context, c *Category) (int64, error)

	// FindByID returns ErrCategoryNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*Category, error)

	// FindByName returns ErrCategoryNotFound when no row matches.
	FindByName(ctx context.Context, name string) (*Category, error)

	FindAll(ctx context.Context) ([]Category, error)

	// Update persists name/description and returns ErrCategoryNotFound
	// when the id does not exist.
	Update(ctx context.Context, c *Category) error

	// FindBooks lists every book referencing the category, across all
	// owners, unpaginated.
	FindBooks(ctx context.Context, categoryID int64) ([]BookRow, error)
}
