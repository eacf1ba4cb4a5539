package repository

import (
	"context"
	"fmt"

	"github.com/userd/userd/internal/model"
)

// sampleUsers are the fixed rows inserted in development mode.
var sampleUsers = []model.User{
	{ID: 1, FirstName: "John", LastName: "Doe", Email: "john_doe@email.com"},
	{ID: 2, FirstName: "Jane", LastName: "Doe", Email: "jane_doe@email.com"},
}

// SeedUsers inserts the fixed sample rows with explicit identifiers.
// Rows whose identifier already exists are skipped, so seeding is idempotent.
func (r *Repository) SeedUsers(ctx context.Context) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`

	for _, u := range sampleUsers {
		if _, err := r.pool.Exec(ctx, query, u.ID, u.FirstName, u.LastName, u.Email); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", u.ID, err)
		}
	}

	return nil
}
