// Package model defines domain entities for the application.
package model

// User represents a persisted user row. The identifier is assigned
// by the database unless seeded explicitly.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// NewUser is the request payload for creating a user.
// All fields must be non-empty.
type NewUser struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// UpdateUser is the request payload for replacing a user's fields.
// All fields must be non-empty.
type UpdateUser struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}
