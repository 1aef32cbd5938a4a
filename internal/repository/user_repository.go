package repository

import (
	"database/sql"
	"fmt"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts a user or refreshes the profile fields of an existing
// one. Identity originates from the hosted auth provider, so the id is
// always caller-supplied.
func (r *UserRepository) Upsert(user *models.User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (id, email, display_name) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET email = excluded.email, display_name = excluded.display_name`,
		user.ID, user.Email, user.DisplayName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user, or nil when not found
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		"SELECT id, email, display_name, created_at FROM users WHERE id = ?", id,
	).Scan(&user.ID, &user.Email, &user.DisplayName, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
