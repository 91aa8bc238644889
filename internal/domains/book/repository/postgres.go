package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/utils"
)

// postgresRepository is the concrete implementation of book.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, username, title, author, publisher, year, is_finished, category_id, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		INSERT INTO books (username, title, author, publisher, year, is_finished, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING ` + bookColumns

	row := r.pool.QueryRow(ctx, query,
		b.Username, b.Title, b.Author, b.Publisher, b.Year, b.IsFinished, b.CategoryID)

	created, err := scanBook(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, book.ErrBookTitleExists
		}
		return nil, fmt.Errorf("insert book failed: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) FindOwned(ctx context.Context, username string, id int64) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 AND username = $2`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find book failed: %w", err)
	}

	return b, nil
}

// buildWhereClause turns the filter into AND conditions. The owner
// predicate always comes first; the rest apply only when set. Text
// fields match as case-sensitive substrings.
func buildWhereClause(f book.Filter) (string, []interface{}) {
	conditions := []string{"username = $1"}
	args := []interface{}{f.Username}

	addLike := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions,
			column+" LIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}

	addLike("title", f.Title)
	addLike("author", f.Author)
	addLike("publisher", f.Publisher)

	if f.Year != nil {
		args = append(args, *f.Year)
		conditions = append(conditions, "year = $"+strconv.Itoa(len(args)))
	}
	if f.IsFinished != nil {
		args = append(args, *f.IsFinished)
		conditions = append(conditions, "is_finished = $"+strconv.Itoa(len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conditions = append(conditions, "category_id = $"+strconv.Itoa(len(args)))
	}

	return utils.JoinWithAnd(conditions), args
}

func (r *postgresRepository) FindMany(ctx context.Context, f book.Filter) ([]book.Book, error) {
	where, args := buildWhereClause(f)

	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE ` + where + `
		ORDER BY id
		LIMIT ` + strconv.Itoa(f.Limit) + ` OFFSET ` + strconv.Itoa(f.Offset)

	return r.queryBooks(ctx, query, args)
}

func (r *postgresRepository) Count(ctx context.Context, f book.Filter) (int, error) {
	where, args := buildWhereClause(f)

	var total int
	query := `SELECT COUNT(*) FROM books WHERE ` + where
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count books failed: %w", err)
	}

	return total, nil
}

// buildSearchClause combines the owner predicate with an OR over the
// free-text columns, all sharing a single query argument.
func buildSearchClause(f book.SearchFilter) (string, []interface{}) {
	textMatch := utils.JoinWithOr([]string{
		"title LIKE '%' || $2 || '%'",
		"author LIKE '%' || $2 || '%'",
		"publisher LIKE '%' || $2 || '%'",
	})

	return "username = $1 AND " + textMatch, []interface{}{f.Username, f.Query}
}

func (r *postgresRepository) SearchMany(ctx context.Context, f book.SearchFilter) ([]book.Book, error) {
	where, args := buildSearchClause(f)

	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE ` + where + `
		ORDER BY id
		LIMIT ` + strconv.Itoa(f.Limit) + ` OFFSET ` + strconv.Itoa(f.Offset)

	return r.queryBooks(ctx, query, args)
}

func (r *postgresRepository) SearchCount(ctx context.Context, f book.SearchFilter) (int, error) {
	where, args := buildSearchClause(f)

	var total int
	query := `SELECT COUNT(*) FROM books WHERE ` + where
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count books failed: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) CountByTitle(ctx context.Context, username, title string, excludeID int64) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM books WHERE username = $1 AND title = $2 AND id != $3`
	if err := r.pool.QueryRow(ctx, query, username, title, excludeID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count books by title failed: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		UPDATE books
		SET title = $1, author = $2, publisher = $3, year = $4,
		    is_finished = $5, category_id = $6, updated_at = now()
		WHERE id = $7
		RETURNING ` + bookColumns

	row := r.pool.QueryRow(ctx, query,
		b.Title, b.Author, b.Publisher, b.Year, b.IsFinished, b.CategoryID, b.ID)

	updated, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, book.ErrBookTitleExists
		}
		return nil, fmt.Errorf("update book failed: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args []interface{}) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books failed: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Username, &b.Title, &b.Author, &b.Publisher,
			&b.Year, &b.IsFinished, &b.CategoryID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan book failed: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(&b.ID, &b.Username, &b.Title, &b.Author, &b.Publisher,
		&b.Year, &b.IsFinished, &b.CategoryID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
