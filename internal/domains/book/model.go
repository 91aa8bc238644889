package book

import "time"

// Book is the domain entity, mapped 1:1 to the books table.
// Every book belongs to exactly one user; (username, title) is unique
// (books_username_title_key).
type Book struct {
	ID         int64  `db:"id" json:"id"`
	Username   string `db:"username" json:"username"`
	Title      string `db:"title" json:"title"`
	Author     string `db:"author" json:"author"`
	Publisher  string `db:"publisher" json:"publisher"`
	Year       int    `db:"year" json:"year"`
	IsFinished bool   `db:"is_finished" json:"isFinished"`

	// CategoryID stores the category's identifier; the public response
	// carries the resolved name instead.
	CategoryID int64 `db:"category_id" json:"categoryId"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Filter is the AND-combined predicate set for the filtered listing.
// Zero-valued fields are not applied.
type Filter struct {
	Username   string
	Title      string
	Author     string
	Publisher  string
	Year       *int
	IsFinished *bool
	CategoryID *int64
	Limit      int
	Offset     int
}

// SearchFilter is the OR-combined predicate for the free-text search:
// one query matched against title, author and publisher.
type SearchFilter struct {
	Username string
	Query    string
	Limit    int
	Offset   int
}
