package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category is not found")
	ErrCategoryExists   = errors.New("category already exists")
)
