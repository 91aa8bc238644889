package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user"
)

// postgresRepository is the concrete implementation of user.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	query := `
		INSERT INTO users (username, password, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		u.Username,
		u.Password,
		u.Name,
		u.Role,
	).Scan(&id)

	if err != nil {
		// 23505 = unique_violation; the users_username_key index backs
		// the application-level duplicate check against races.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, user.ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert user failed: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, password, name, role, token, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Name,
		&u.Role,
		&u.Token,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE username = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, username).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users failed: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET name = $1, password = $2, updated_at = now()
		WHERE username = $3
	`

	tag, err := r.pool.Exec(ctx, query, u.Name, u.Password, u.Username)
	if err != nil {
		return fmt.Errorf("update user failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *postgresRepository) SetToken(ctx context.Context, username string, token *string) error {
	query := `UPDATE users SET token = $1, updated_at = now() WHERE username = $2`

	tag, err := r.pool.Exec(ctx, query, token, username)
	if err != nil {
		return fmt.Errorf("set token failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
