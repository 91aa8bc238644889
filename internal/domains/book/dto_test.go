package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateBookRequest {
	finished := false
	return CreateBookRequest{
		Title:        "The Go Programming Language",
		Year:         2015,
		Author:       "Alan Donovan",
		Publisher:    "Addison-Wesley",
		IsFinished:   &finished,
		CategoryName: "Programming",
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, validCreateRequest().Validate())
	})

	t.Run("current year is allowed", func(t *testing.T) {
		req := validCreateRequest()
		req.Year = time.Now().Year()
		assert.NoError(t, req.Validate())
	})

	t.Run("next year is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Year = time.Now().Year() + 1
		assert.Error(t, req.Validate())
	})

	t.Run("year zero is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Year = 0
		assert.Error(t, req.Validate())
	})

	t.Run("missing isFinished is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.IsFinished = nil
		assert.Error(t, req.Validate())
	})

	t.Run("missing category name is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.CategoryName = ""
		assert.Error(t, req.Validate())
	})
}

func TestUpdateBookRequestValidate(t *testing.T) {
	t.Run("empty update passes", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{}.Validate())
	})

	t.Run("future year is rejected", func(t *testing.T) {
		year := time.Now().Year() + 1
		assert.Error(t, UpdateBookRequest{Year: &year}.Validate())
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		title := ""
		assert.Error(t, UpdateBookRequest{Title: &title}.Validate())
	})
}

func TestSearchBooksRequestNormalize(t *testing.T) {
	req := SearchBooksRequest{}
	req.Normalize()

	assert.Equal(t, DefaultPage, req.Page)
	assert.Equal(t, DefaultSize, req.Size)

	// Explicit values survive normalization.
	req = SearchBooksRequest{Page: 3, Size: 25}
	req.Normalize()

	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.Size)
}

func TestSimpleSearchRequestValidate(t *testing.T) {
	t.Run("query is required", func(t *testing.T) {
		req := SimpleSearchRequest{Page: 1}
		assert.Error(t, req.Validate())
	})

	t.Run("page beyond the cap is rejected", func(t *testing.T) {
		req := SimpleSearchRequest{Search: "go", Page: SimpleSearchPages + 1}
		assert.Error(t, req.Validate())
	})

	t.Run("normalize defaults page only", func(t *testing.T) {
		req := SimpleSearchRequest{Search: "go"}
		req.Normalize()
		require.NoError(t, req.Validate())
		assert.Equal(t, DefaultPage, req.Page)
	})
}
