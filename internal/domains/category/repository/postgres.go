package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/category"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

// categoryCacheTTL bounds staleness between an admin rename and readers
// that resolved the old row from cache.
const categoryCacheTTL = 10 * time.Minute

// postgresRepository implements category.Repository with cache-aside
// reads. Category lookups run on every book response assembly, so the
// id and name lookups are cached.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool, cacheClient cache.Cache) category.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cacheClient,
	}
}

func cacheKeyID(id int64) string      { return fmt.Sprintf("category:id:%d", id) }
func cacheKeyName(name string) string { return "category:name:" + name }

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) (int64, error) {
	query := `
		INSERT INTO categories (name, description, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, c.Name, c.Description).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, category.ErrCategoryExists
		}
		return 0, fmt.Errorf("insert category failed: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	key := cacheKeyID(id)

	var cached category.Category
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	c, err := r.scanOne(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, c, categoryCacheTTL); err != nil {
		logger.Error("category cache set failed", err)
	}

	return c, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	key := cacheKeyName(name)

	var cached category.Category
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	c, err := r.scanOne(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE name = $1
	`, name)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, c, categoryCacheTTL); err != nil {
		logger.Error("category cache set failed", err)
	}

	return c, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category failed: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	// Invalidate both lookup keys; the name key may belong to the old name.
	old, err := r.scanOne(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, c.ID)
	if err != nil {
		return err
	}

	query := `
		UPDATE categories
		SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
	`

	if _, err := r.pool.Exec(ctx, query, c.Name, c.Description, c.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.ErrCategoryExists
		}
		return fmt.Errorf("update category failed: %w", err)
	}

	if err := r.cache.Delete(ctx, cacheKeyID(c.ID), cacheKeyName(old.Name), cacheKeyName(c.Name)); err != nil {
		logger.Error("category cache invalidation failed", err)
	}

	return nil
}

func (r *postgresRepository) FindBooks(ctx context.Context, categoryID int64) ([]category.BookRow, error) {
	query := `
		SELECT id, username, title, author, publisher, year, is_finished
		FROM books
		WHERE category_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category books failed: %w", err)
	}
	defer rows.Close()

	books := make([]category.BookRow, 0)
	for rows.Next() {
		var b category.BookRow
		if err := rows.Scan(&b.ID, &b.Username, &b.Title, &b.Author, &b.Publisher, &b.Year, &b.IsFinished); err != nil {
			return nil, fmt.Errorf("scan book failed: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) scanOne(ctx context.Context, query string, arg interface{}) (*category.Category, error) {
	var c category.Category
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category failed: %w", err)
	}

	return &c, nil
}
