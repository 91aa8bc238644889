package service

import (
	"context"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/comment"
	"library-backend/pkg/logger"
)

type commentService struct {
	repo  comment.Repository
	books book.Repository
}

// NewCommentService - Constructor with DI
func NewCommentService(repo comment.Repository, books book.Repository) comment.Service {
	return &commentService{
		repo:  repo,
		books: books,
	}
}

// Post attaches a comment to one of the caller's books.
func (s *commentService) Post(ctx context.Context, username string, bookID int64, req comment.CreateCommentRequest) (*comment.CommentResponse, error) {
	logger.Debug("CommentService.Post", map[string]interface{}{"username": username, "bookId": bookID})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.books.FindOwned(ctx, username, bookID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &comment.Comment{
		BookID:   bookID,
		Username: username,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	return &resp, nil
}

// GetAll lists every comment on the book, unpaginated. The book must
// belong to the caller; the comments themselves may have any author.
func (s *commentService) GetAll(ctx context.Context, username string, bookID int64) ([]comment.CommentResponse, error) {
	logger.Debug("CommentService.GetAll", map[string]interface{}{"username": username, "bookId": bookID})

	if _, err := s.books.FindOwned(ctx, username, bookID); err != nil {
		return nil, err
	}

	comments, err := s.repo.FindByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	responses := make([]comment.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = comments[i].ToResponse()
	}

	return responses, nil
}

// GetOne returns a single comment. The guard matches id, bookId and
// username together, so another user's comment on the same book reads
// as not found.
func (s *commentService) GetOne(ctx context.Context, username string, bookID, commentID int64) (*comment.CommentResponse, error) {
	logger.Debug("CommentService.GetOne", map[string]interface{}{"username": username, "bookId": bookID, "commentId": commentID})

	if _, err := s.repo.FindGuarded(ctx, commentID, bookID, username); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	resp := c.ToResponse()
	return &resp, nil
}

// Update rewrites the content of one of the caller's own comments.
func (s *commentService) Update(ctx context.Context, username string, bookID, commentID int64, req comment.UpdateCommentRequest) (*comment.CommentResponse, error) {
	logger.Debug("CommentService.Update", map[string]interface{}{"username": username, "bookId": bookID, "commentId": commentID})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindGuarded(ctx, commentID, bookID, username)
	if err != nil {
		return nil, err
	}

	content := existing.Content
	if req.Content != nil {
		content = *req.Content
	}

	updated, err := s.repo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	return &resp, nil
}

// Remove deletes one of the caller's own comments.
func (s *commentService) Remove(ctx context.Context, username string, bookID, commentID int64) error {
	logger.Debug("CommentService.Remove", map[string]interface{}{"username": username, "bookId": bookID, "commentId": commentID})

	if _, err := s.repo.FindGuarded(ctx, commentID, bookID, username); err != nil {
		return err
	}

	return s.repo.Delete(ctx, commentID)
}
