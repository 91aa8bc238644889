package book

import "errors"

var (
	// ErrBookNotFound covers both a missing id and an id owned by a
	// different user; callers cannot tell the two apart.
	ErrBookNotFound = errors.New("book is not found")

	ErrBookTitleExists = errors.New("book with this title already exists")
)
