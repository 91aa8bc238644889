package category

import "time"

// Category is the domain entity, mapped 1:1 to the categories table.
// Names are globally unique (categories_name_key).
type Category struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// BookRow is a book as listed under a category. The category→books
// expansion is not scoped to a single owner, so the owning username is
// part of the row.
type BookRow struct {
	ID         int64  `db:"id" json:"id"`
	Username   string `db:"username" json:"username"`
	Title      string `db:"title" json:"title"`
	Author     string `db:"author" json:"author"`
	Publisher  string `db:"publisher" json:"publisher"`
	Year       int    `db:"year" json:"year"`
	IsFinished bool   `db:"is_finished" json:"isFinished"`
}
