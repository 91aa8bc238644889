package book

import "context"

// Repository is the data access contract for books.
type Repository interface {
	// Create inserts the book and returns the stored row.
	// Returns ErrBookTitleExists on a duplicate (username, title).
	Create(ctx context.Context, b *Book) (*Book, error)

	// FindOwned is the ownership guard: the row must match both id and
	// username, otherwise ErrBookNotFound.
	FindOwned(ctx context.Context, username string, id int64) (*Book, error)

	// FindMany applies the AND-combined filter with limit/offset.
	FindMany(ctx context.Context, f Filter) ([]Book, error)

	// Count runs the same filter without pagination.
	Count(ctx context.Context, f Filter) (int, error)

	// SearchMany applies the OR-combined free-text filter.
	SearchMany(ctx context.Context, f SearchFilter) ([]Book, error)

	// SearchCount runs the same free-text filter without pagination.
	SearchCount(ctx context.Context, f SearchFilter) (int, error)

	// CountByTitle counts the owner's books with this exact title,
	// excluding excludeID (pass 0 to exclude nothing).
	CountByTitle(ctx context.Context, username, title string, excludeID int64) (int, error)

	// Update persists all mutable fields and returns the stored row.
	Update(ctx context.Context, b *Book) (*Book, error)

	Delete(ctx context.Context, id int64) error
}
