package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/internal/domains/comment"
)

// fakeBookRepo is an in-memory book.Repository.
type fakeBookRepo struct {
	nextID int64
	books  []book.Book
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	r.nextID++
	stored := *b
	stored.ID = r.nextID
	r.books = append(r.books, stored)
	return &stored, nil
}

func (r *fakeBookRepo) FindOwned(_ context.Context, username string, id int64) (*book.Book, error) {
	for i := range r.books {
		if r.books[i].ID == id && r.books[i].Username == username {
			b := r.books[i]
			return &b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func matchesFilter(b book.Book, f book.Filter) bool {
	if b.Username != f.Username {
		return false
	}
	if f.Title != "" && !strings.Contains(b.Title, f.Title) {
		return false
	}
	if f.Author != "" && !strings.Contains(b.Author, f.Author) {
		return false
	}
	if f.Publisher != "" && !strings.Contains(b.Publisher, f.Publisher) {
		return false
	}
	if f.Year != nil && b.Year != *f.Year {
		return false
	}
	if f.IsFinished != nil && b.IsFinished != *f.IsFinished {
		return false
	}
	if f.CategoryID != nil && b.CategoryID != *f.CategoryID {
		return false
	}
	return true
}

func matchesSearch(b book.Book, f book.SearchFilter) bool {
	if b.Username != f.Username {
		return false
	}
	return strings.Contains(b.Title, f.Query) ||
		strings.Contains(b.Author, f.Query) ||
		strings.Contains(b.Publisher, f.Query)
}

func paginate(matched []book.Book, limit, offset int) []book.Book {
	if offset >= len(matched) {
		return nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end]
}

func (r *fakeBookRepo) FindMany(_ context.Context, f book.Filter) ([]book.Book, error) {
	var matched []book.Book
	for _, b := range r.books {
		if matchesFilter(b, f) {
			matched = append(matched, b)
		}
	}
	return paginate(matched, f.Limit, f.Offset), nil
}

func (r *fakeBookRepo) Count(_ context.Context, f book.Filter) (int, error) {
	total := 0
	for _, b := range r.books {
		if matchesFilter(b, f) {
			total++
		}
	}
	return total, nil
}

func (r *fakeBookRepo) SearchMany(_ context.Context, f book.SearchFilter) ([]book.Book, error) {
	var matched []book.Book
	for _, b := range r.books {
		if matchesSearch(b, f) {
			matched = append(matched, b)
		}
	}
	return paginate(matched, f.Limit, f.Offset), nil
}

func (r *fakeBookRepo) SearchCount(_ context.Context, f book.SearchFilter) (int, error) {
	total := 0
	for _, b := range r.books {
		if matchesSearch(b, f) {
			total++
		}
	}
	return total, nil
}

func (r *fakeBookRepo) CountByTitle(_ context.Context, username, title string, excludeID int64) (int, error) {
	total := 0
	for _, b := range r.books {
		if b.Username == username && b.Title == title && b.ID != excludeID {
			total++
		}
	}
	return total, nil
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) (*book.Book, error) {
	for i := range r.books {
		if r.books[i].ID == b.ID {
			r.books[i] = *b
			stored := *b
			return &stored, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Delete(_ context.Context, id int64) error {
	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return book.ErrBookNotFound
}

// fakeCategoryService resolves a fixed name/id mapping.
type fakeCategoryService struct {
	byName map[string]int64
	byID   map[int64]string
}

func newFakeCategoryService(names ...string) *fakeCategoryService {
	f := &fakeCategoryService{
		byName: make(map[string]int64),
		byID:   make(map[int64]string),
	}
	for i, name := range names {
		id := int64(i + 1)
		f.byName[name] = id
		f.byID[id] = name
	}
	return f
}

func (f *fakeCategoryService) Create(context.Context, category.CreateCategoryRequest) (*category.CategoryResponse, error) {
	panic("not used")
}

func (f *fakeCategoryService) Get(_ context.Context, id int64) (*category.CategoryResponse, error) {
	name, ok := f.byID[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return &category.CategoryResponse{ID: id, Name: name}, nil
}

func (f *fakeCategoryService) GetAll(context.Context) ([]category.CategoryResponse, error) {
	panic("not used")
}

func (f *fakeCategoryService) GetWithBooks(context.Context, int64) (*category.CategoryResponse, error) {
	panic("not used")
}

func (f *fakeCategoryService) Update(context.Context, int64, category.UpdateCategoryRequest) (*category.CategoryResponse, error) {
	panic("not used")
}

func (f *fakeCategoryService) Exists(_ context.Context, name string) (bool, error) {
	_, ok := f.byName[name]
	return ok, nil
}

func (f *fakeCategoryService) ResolveName(_ context.Context, name string) (int64, error) {
	id, ok := f.byName[name]
	if !ok {
		return 0, category.ErrCategoryNotFound
	}
	return id, nil
}

// fakeCommentService returns canned comments on GetAll.
type fakeCommentService struct {
	comments []comment.CommentResponse
}

func (f *fakeCommentService) Post(context.Context, string, int64, comment.CreateCommentRequest) (*comment.CommentResponse, error) {
	panic("not used")
}

func (f *fakeCommentService) GetAll(context.Context, string, int64) ([]comment.CommentResponse, error) {
	return f.comments, nil
}

func (f *fakeCommentService) GetOne(context.Context, string, int64, int64) (*comment.CommentResponse, error) {
	panic("not used")
}

func (f *fakeCommentService) Update(context.Context, string, int64, int64, comment.UpdateCommentRequest) (*comment.CommentResponse, error) {
	panic("not used")
}

func (f *fakeCommentService) Remove(context.Context, string, int64, int64) error {
	panic("not used")
}

func newTestService() (book.Service, *fakeBookRepo, *fakeCommentService) {
	repo := &fakeBookRepo{}
	comments := &fakeCommentService{}
	svc := NewBookService(repo, newFakeCategoryService("Programming", "Fiction"), comments)
	return svc, repo, comments
}

func createRequest(title string) *book.CreateBookRequest {
	finished := false
	return &book.CreateBookRequest{
		Title:        title,
		Year:         2015,
		Author:       "Alan Donovan",
		Publisher:    "Addison-Wesley",
		IsFinished:   &finished,
		CategoryName: "Programming",
	}
}

func TestBookServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("echoes input and resolves category name", func(t *testing.T) {
		svc, _, _ := newTestService()

		resp, err := svc.Create(ctx, "alice", createRequest("The Go Programming Language"))
		require.NoError(t, err)

		assert.Equal(t, "The Go Programming Language", resp.Title)
		assert.Equal(t, "Alan Donovan", resp.Author)
		assert.Equal(t, "Addison-Wesley", resp.Publisher)
		assert.Equal(t, 2015, resp.Year)
		assert.False(t, resp.IsFinished)
		assert.Equal(t, "Programming", resp.CategoryName)
		assert.NotZero(t, resp.ID)
	})

	t.Run("duplicate title for the same owner conflicts", func(t *testing.T) {
		svc, repo, _ := newTestService()

		_, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, "alice", createRequest("Dune"))
		assert.ErrorIs(t, err, book.ErrBookTitleExists)
		assert.Len(t, repo.books, 1)
	})

	t.Run("same title under a different owner is fine", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, "bob", createRequest("Dune"))
		assert.NoError(t, err)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		svc, _, _ := newTestService()

		req := createRequest("Dune")
		req.CategoryName = "Unknown"

		_, err := svc.Create(ctx, "alice", req)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func seedBooks(t *testing.T, svc book.Service, username string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), username, createRequest(fmt.Sprintf("Book %03d", i)))
		require.NoError(t, err)
	}
}

func TestBookServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("pagination math", func(t *testing.T) {
		svc, _, _ := newTestService()
		seedBooks(t, svc, "alice", 25)

		books, paging, err := svc.List(ctx, "alice", &book.SearchBooksRequest{Page: 3, Size: 10})
		require.NoError(t, err)

		// 25 rows at size 10: the third page holds the last 5.
		assert.Len(t, books, 5)
		assert.Equal(t, 5, paging.Size)
		assert.Equal(t, 3, paging.CurrentPage)
		assert.Equal(t, 3, paging.TotalPage)
	})

	t.Run("page beyond range is empty", func(t *testing.T) {
		svc, _, _ := newTestService()
		seedBooks(t, svc, "alice", 5)

		books, paging, err := svc.List(ctx, "alice", &book.SearchBooksRequest{Page: 4, Size: 10})
		require.NoError(t, err)

		assert.Empty(t, books)
		assert.Equal(t, 0, paging.Size)
		assert.Equal(t, 1, paging.TotalPage)
	})

	t.Run("never leaks other owners' books", func(t *testing.T) {
		svc, _, _ := newTestService()
		seedBooks(t, svc, "alice", 3)
		seedBooks(t, svc, "bob", 7)

		books, paging, err := svc.List(ctx, "alice", &book.SearchBooksRequest{})
		require.NoError(t, err)

		assert.Len(t, books, 3)
		assert.Equal(t, 1, paging.TotalPage)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		svc, _, _ := newTestService()
		seedBooks(t, svc, "alice", 5)

		books, _, err := svc.List(ctx, "alice", &book.SearchBooksRequest{
			Title:  "Book 002",
			Author: "Donovan",
		})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Book 002", books[0].Title)

		books, _, err = svc.List(ctx, "alice", &book.SearchBooksRequest{
			Title:  "Book 002",
			Author: "Nobody",
		})
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookServiceSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("page size is fixed at twenty", func(t *testing.T) {
		svc, _, _ := newTestService()
		seedBooks(t, svc, "alice", 25)

		books, paging, err := svc.Search(ctx, "alice", &book.SimpleSearchRequest{Search: "Book"})
		require.NoError(t, err)

		assert.Len(t, books, book.SimpleSearchSize)
		assert.Equal(t, book.SimpleSearchSize, paging.Size)
		assert.Equal(t, 2, paging.TotalPage)

		books, paging, err = svc.Search(ctx, "alice", &book.SimpleSearchRequest{Search: "Book", Page: 2})
		require.NoError(t, err)

		assert.Len(t, books, 5)
		assert.Equal(t, 5, paging.Size)
		assert.Equal(t, 2, paging.CurrentPage)
	})

	t.Run("matches any of title author publisher", func(t *testing.T) {
		svc, _, _ := newTestService()
		seedBooks(t, svc, "alice", 3)

		// The query matches the author, not the titles.
		books, _, err := svc.Search(ctx, "alice", &book.SimpleSearchRequest{Search: "Donovan"})
		require.NoError(t, err)
		assert.Len(t, books, 3)
	})
}

func TestBookServiceGetOne(t *testing.T) {
	ctx := context.Background()

	t.Run("includes comments", func(t *testing.T) {
		svc, _, comments := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		comments.comments = []comment.CommentResponse{
			{BookID: created.ID, Username: "alice", Content: "great read"},
		}

		resp, err := svc.GetOne(ctx, "alice", created.ID)
		require.NoError(t, err)
		require.Len(t, resp.Comments, 1)
		assert.Equal(t, "great read", resp.Comments[0].Content)
	})

	t.Run("another owner's book reads as not found", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		_, err = svc.GetOne(ctx, "bob", created.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		finished := true
		resp, err := svc.Update(ctx, "alice", created.ID, &book.UpdateBookRequest{IsFinished: &finished})
		require.NoError(t, err)

		assert.True(t, resp.IsFinished)
		assert.Equal(t, "Dune", resp.Title)
		assert.Equal(t, "Alan Donovan", resp.Author)
	})

	t.Run("rename to an existing title conflicts", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)
		second, err := svc.Create(ctx, "alice", createRequest("Hyperion"))
		require.NoError(t, err)

		title := "Dune"
		_, err = svc.Update(ctx, "alice", second.ID, &book.UpdateBookRequest{Title: &title})
		assert.ErrorIs(t, err, book.ErrBookTitleExists)
	})

	t.Run("keeping the same title does not self-conflict", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		title := "Dune"
		_, err = svc.Update(ctx, "alice", created.ID, &book.UpdateBookRequest{Title: &title})
		assert.NoError(t, err)
	})

	t.Run("changing the category resolves the new name", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		name := "Fiction"
		resp, err := svc.Update(ctx, "alice", created.ID, &book.UpdateBookRequest{CategoryName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Fiction", resp.CategoryName)
	})

	t.Run("another owner's book reads as not found", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		title := "Stolen"
		_, err = svc.Update(ctx, "bob", created.ID, &book.UpdateBookRequest{Title: &title})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the last known values", func(t *testing.T) {
		svc, repo, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		resp, err := svc.Remove(ctx, "alice", created.ID)
		require.NoError(t, err)

		assert.Equal(t, "Dune", resp.Title)
		assert.Equal(t, "Programming", resp.CategoryName)
		assert.Empty(t, repo.books)
	})

	t.Run("another owner's book reads as not found", func(t *testing.T) {
		svc, repo, _ := newTestService()
		created, err := svc.Create(ctx, "alice", createRequest("Dune"))
		require.NoError(t, err)

		_, err = svc.Remove(ctx, "bob", created.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Len(t, repo.books, 1)
	})
}
