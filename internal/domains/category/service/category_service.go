package service

import (
	"context"
	"errors"

	"library-backend/internal/domains/category"
	"library-backend/pkg/logger"
)

type categoryService struct {
	repo category.Repository
}

// NewCategoryService - Constructor with DI
func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

// Create adds a new category. Names are globally unique.
func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryResponse, error) {
	logger.Debug("CategoryService.Create", map[string]interface{}{"name": req.Name})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.Exists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, category.ErrCategoryExists
	}

	c := &category.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	resp := c.ToResponse(nil)
	return &resp, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*category.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := c.ToResponse(nil)
	return &resp, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]category.CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]category.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = categories[i].ToResponse(nil)
	}

	return responses, nil
}

// GetWithBooks expands every book referencing the category, across all
// owners, unpaginated.
func (s *categoryService) GetWithBooks(ctx context.Context, id int64) (*category.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.FindBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := c.ToResponse(books)
	return &resp, nil
}

// Update applies a partial update, re-checking name uniqueness against
// other categories.
func (s *categoryService) Update(ctx context.Context, id int64, req category.UpdateCategoryRequest) (*category.CategoryResponse, error) {
	logger.Debug("CategoryService.Update", map[string]interface{}{"id": id})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != c.Name {
		exists, err := s.Exists(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, category.ErrCategoryExists
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	resp := c.ToResponse(nil)
	return &resp, nil
}

func (s *categoryService) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, category.ErrCategoryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *categoryService) ResolveName(ctx context.Context, name string) (int64, error) {
	c, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}
