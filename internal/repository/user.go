package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/userd/userd/internal/model"
)

// ErrUserNotFound is returned when no user row matches the identifier.
var ErrUserNotFound = errors.New("user not found")

// ListUsers returns all user rows. The result is unbounded.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM users
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, nil
}

// GetUser retrieves a user by identifier.
func (r *Repository) GetUser(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// CreateUser inserts a new user row. The database assigns the identifier.
func (r *Repository) CreateUser(ctx context.Context, user model.NewUser) error {
	query := `
		INSERT INTO users (first_name, last_name, email)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, user.FirstName, user.LastName, user.Email)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// UpdateUser replaces the non-id fields of the user row in a single
// conditional statement. Zero rows affected means the user does not exist.
func (r *Repository) UpdateUser(ctx context.Context, id int, user model.UpdateUser) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`

	tag, err := r.pool.Exec(ctx, query, user.FirstName, user.LastName, user.Email, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the user row in a single conditional statement.
// Zero rows affected means the user does not exist.
func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
