package comment

import "context"

// Service is the business logic contract for comments. Every operation
// first confirms the parent book belongs to the acting user.
type Service interface {
	Post(ctx context.Context, username string, bookID int64, req CreateCommentRequest) (*CommentResponse, error)
	GetAll(ctx context.Context, username string, bookID int64) ([]CommentResponse, error)
	GetOne(ctx context.Context, username string, bookID, commentID int64) (*CommentResponse, error)
	Update(ctx context.Context, username string, bookID, commentID int64, req UpdateCommentRequest) (*CommentResponse, error)
	Remove(ctx context.Context, username string, bookID, commentID int64) error
}
