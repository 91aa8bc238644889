package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/comment"
)

// postgresRepository is the concrete implementation of comment.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = `id, book_id, username, content, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
		INSERT INTO comments (book_id, username, content, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING ` + commentColumns

	row := r.pool.QueryRow(ctx, query, c.BookID, c.Username, c.Content)

	created, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("insert comment failed: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) FindByBook(ctx context.Context, bookID int64) ([]comment.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE book_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.BookID, &c.Username, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	c, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find comment failed: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) FindGuarded(ctx context.Context, id, bookID int64, username string) (*comment.Comment, error) {
	// All three predicates at once: id, parent book and author.
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE id = $1 AND book_id = $2 AND username = $3
	`

	c, err := scanComment(r.pool.QueryRow(ctx, query, id, bookID, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find comment failed: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) UpdateContent(ctx context.Context, id int64, content string) (*comment.Comment, error) {
	query := `
		UPDATE comments
		SET content = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + commentColumns

	c, err := scanComment(r.pool.QueryRow(ctx, query, content, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comment failed: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func scanComment(row pgx.Row) (*comment.Comment, error) {
	var c comment.Comment
	err := row.Scan(&c.ID, &c.BookID, &c.Username, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
