package comment

import "context"

// Repository is the data access contract for comments.
type Repository interface {
	Create(ctx context.Context, c *Comment) (*Comment, error)

	// FindByBook lists every comment on a book, unpaginated.
	FindByBook(ctx context.Context, bookID int64) ([]Comment, error)

	// FindByID returns ErrCommentNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*Comment, error)

	// FindGuarded matches id, bookId and username simultaneously.
	// A comment authored by a different user on the same book returns
	// ErrCommentNotFound.
	FindGuarded(ctx context.Context, id, bookID int64, username string) (*Comment, error)

	// UpdateContent rewrites the content and returns the updated row.
	UpdateContent(ctx context.Context, id int64, content string) (*Comment, error)

	Delete(ctx context.Context, id int64) error
}
