package service

import (
	"context"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/internal/domains/comment"
	"library-backend/internal/shared/response"
)

// bookService is the concrete implementation of book.Service.
type bookService struct {
	repo       book.Repository
	categories category.Service
	comments   comment.Service
}

// NewBookService - Constructor
func NewBookService(repo book.Repository, categories category.Service, comments comment.Service) book.Service {
	return &bookService{
		repo:       repo,
		categories: categories,
		comments:   comments,
	}
}

func (s *bookService) Create(ctx context.Context, username string, req *book.CreateBookRequest) (*book.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.CountByTitle(ctx, username, req.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, book.ErrBookTitleExists
	}

	categoryID, err := s.categories.ResolveName(ctx, req.CategoryName)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &book.Book{
		Username:   username,
		Title:      req.Title,
		Author:     req.Author,
		Publisher:  req.Publisher,
		Year:       req.Year,
		IsFinished: *req.IsFinished,
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, username, created, false)
}

func (s *bookService) List(ctx context.Context, username string, req *book.SearchBooksRequest) ([]book.BookResponse, *response.Paging, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	filter := book.Filter{
		Username:   username,
		Title:      req.Title,
		Author:     req.Author,
		Publisher:  req.Publisher,
		Year:       req.Year,
		IsFinished: req.IsFinished,
		Limit:      req.Size,
		Offset:     (req.Page - 1) * req.Size,
	}

	if req.CategoryName != "" {
		categoryID, err := s.categories.ResolveName(ctx, req.CategoryName)
		if err != nil {
			return nil, nil, err
		}
		filter.CategoryID = &categoryID
	}

	rows, err := s.repo.FindMany(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.toResponses(ctx, username, rows)
	if err != nil {
		return nil, nil, err
	}

	return books, pagingFor(len(rows), req.Page, req.Size, total), nil
}

func (s *bookService) Search(ctx context.Context, username string, req *book.SimpleSearchRequest) ([]book.BookResponse, *response.Paging, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	filter := book.SearchFilter{
		Username: username,
		Query:    req.Search,
		Limit:    book.SimpleSearchSize,
		Offset:   (req.Page - 1) * book.SimpleSearchSize,
	}

	rows, err := s.repo.SearchMany(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.SearchCount(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.toResponses(ctx, username, rows)
	if err != nil {
		return nil, nil, err
	}

	return books, pagingFor(len(rows), req.Page, book.SimpleSearchSize, total), nil
}

func (s *bookService) GetOne(ctx context.Context, username string, id int64) (*book.BookResponse, error) {
	b, err := s.repo.FindOwned(ctx, username, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, username, b, true)
}

func (s *bookService) Update(ctx context.Context, username string, id int64, req *book.UpdateBookRequest) (*book.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.FindOwned(ctx, username, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		// Uniqueness check must not trip over the book itself.
		taken, err := s.repo.CountByTitle(ctx, username, *req.Title, id)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, book.ErrBookTitleExists
		}
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Publisher != nil {
		b.Publisher = *req.Publisher
	}
	if req.Year != nil {
		b.Year = *req.Year
	}
	if req.IsFinished != nil {
		b.IsFinished = *req.IsFinished
	}
	if req.CategoryName != nil {
		categoryID, err := s.categories.ResolveName(ctx, *req.CategoryName)
		if err != nil {
			return nil, err
		}
		b.CategoryID = categoryID
	}

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, username, updated, false)
}

func (s *bookService) Remove(ctx context.Context, username string, id int64) (*book.BookResponse, error) {
	b, err := s.repo.FindOwned(ctx, username, id)
	if err != nil {
		return nil, err
	}

	// Resolve the category name before the row (and its comments) go.
	resp, err := s.toResponse(ctx, username, b, false)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, b.ID); err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *bookService) toResponse(ctx context.Context, username string, b *book.Book, withComments bool) (*book.BookResponse, error) {
	cat, err := s.categories.Get(ctx, b.CategoryID)
	if err != nil {
		return nil, err
	}

	resp := &book.BookResponse{
		ID:           b.ID,
		Title:        b.Title,
		Author:       b.Author,
		Publisher:    b.Publisher,
		Year:         b.Year,
		IsFinished:   b.IsFinished,
		CategoryName: cat.Name,
	}

	if withComments {
		comments, err := s.comments.GetAll(ctx, username, b.ID)
		if err != nil {
			return nil, err
		}
		resp.Comments = comments
	}

	return resp, nil
}

func (s *bookService) toResponses(ctx context.Context, username string, rows []book.Book) ([]book.BookResponse, error) {
	books := make([]book.BookResponse, 0, len(rows))
	for i := range rows {
		resp, err := s.toResponse(ctx, username, &rows[i], false)
		if err != nil {
			return nil, err
		}
		books = append(books, *resp)
	}

	return books, nil
}

// pagingFor builds the paging envelope. Size reports the number of rows
// actually returned, not the requested page size.
func pagingFor(returned, page, size, total int) *response.Paging {
	return &response.Paging{
		Size:        returned,
		CurrentPage: page,
		TotalPage:   (total + size - 1) / size,
	}
}
