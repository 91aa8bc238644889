package comment

import "time"

// Comment is the domain entity, mapped 1:1 to the comments table.
// A comment belongs to exactly one book and records its author.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	BookID    int64     `db:"book_id" json:"bookId"`
	Username  string    `db:"username" json:"username"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
