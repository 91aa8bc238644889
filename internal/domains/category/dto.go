package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest - POST /api/category (admin only)
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(3, 255),
		),
	)
}

// UpdateCategoryRequest - PATCH /api/category/:categoryId, fields optional.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(3, 255)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(3, 255)),
	)
}

// CategoryResponse is the public category shape. Books is only populated
// on the /:categoryId/books expansion and is never paginated.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Books       []BookRow `json:"books"`
}

// ToResponse converts a Category entity to its public shape.
func (c *Category) ToResponse(books []BookRow) CategoryResponse {
	if books == nil {
		books = []BookRow{}
	}
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Books:       books,
	}
}
