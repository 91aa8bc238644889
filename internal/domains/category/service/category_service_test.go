package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/category"
)

// fakeCategoryRepo is an in-memory category.Repository.
type fakeCategoryRepo struct {
	nextID     int64
	categories []category.Category
	books      map[int64][]category.BookRow
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *category.Category) (int64, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return 0, category.ErrCategoryExists
		}
	}
	r.nextID++
	stored := *c
	stored.ID = r.nextID
	r.categories = append(r.categories, stored)
	return stored.ID, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*category.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*category.Category, error) {
	for i := range r.categories {
		if r.categories[i].Name == name {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(context.Context) ([]category.Category, error) {
	return append([]category.Category(nil), r.categories...), nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	for i := range r.categories {
		if r.categories[i].ID == c.ID {
			r.categories[i] = *c
			return nil
		}
	}
	return category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindBooks(_ context.Context, categoryID int64) ([]category.BookRow, error) {
	return r.books[categoryID], nil
}

func newTestService() (category.Service, *fakeCategoryRepo) {
	repo := &fakeCategoryRepo{books: make(map[int64][]category.BookRow)}
	return NewCategoryService(repo), repo
}

func TestCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with an empty books list", func(t *testing.T) {
		svc, _ := newTestService()

		resp, err := svc.Create(ctx, category.CreateCategoryRequest{
			Name:        "Programming",
			Description: "Software books",
		})
		require.NoError(t, err)

		assert.Equal(t, "Programming", resp.Name)
		assert.NotZero(t, resp.ID)
		assert.NotNil(t, resp.Books)
		assert.Empty(t, resp.Books)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Programming", Description: "Software books"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, category.CreateCategoryRequest{Name: "Programming", Description: "Again"})
		assert.ErrorIs(t, err, category.ErrCategoryExists)
	})

	t.Run("short name is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Go", Description: "Too short"})
		assert.Error(t, err)
	})
}

func TestCategoryServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rename to a taken name conflicts", func(t *testing.T) {
		svc, _ := newTestService()

		first, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Programming", Description: "Software books"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, category.CreateCategoryRequest{Name: "Fiction", Description: "Novels"})
		require.NoError(t, err)

		name := "Fiction"
		_, err = svc.Update(ctx, first.ID, category.UpdateCategoryRequest{Name: &name})
		assert.ErrorIs(t, err, category.ErrCategoryExists)
	})

	t.Run("keeping the same name does not self-conflict", func(t *testing.T) {
		svc, _ := newTestService()

		created, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Programming", Description: "Software books"})
		require.NoError(t, err)

		name := "Programming"
		description := "Updated description"
		resp, err := svc.Update(ctx, created.ID, category.UpdateCategoryRequest{Name: &name, Description: &description})
		require.NoError(t, err)
		assert.Equal(t, "Updated description", resp.Description)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc, _ := newTestService()

		name := "Whatever"
		_, err := svc.Update(ctx, 99, category.UpdateCategoryRequest{Name: &name})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCategoryServiceGetWithBooks(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Programming", Description: "Software books"})
	require.NoError(t, err)

	repo.books[created.ID] = []category.BookRow{
		{ID: 1, Username: "alice", Title: "The Go Programming Language"},
		{ID: 2, Username: "bob", Title: "Learning Go"},
	}

	resp, err := svc.GetWithBooks(ctx, created.ID)
	require.NoError(t, err)

	// The expansion crosses owners.
	require.Len(t, resp.Books, 2)
	assert.Equal(t, "alice", resp.Books[0].Username)
	assert.Equal(t, "bob", resp.Books[1].Username)
}

func TestCategoryServiceResolveName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Programming", Description: "Software books"})
	require.NoError(t, err)

	id, err := svc.ResolveName(ctx, "Programming")
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = svc.ResolveName(ctx, "Unknown")
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
