package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// BadgeRepository handles database operations for the badge catalog and
// user grants. It satisfies badges.Granter.
type BadgeRepository struct {
	db *sql.DB
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *sql.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// ListBadges returns the full badge catalog
func (r *BadgeRepository) ListBadges() ([]models.BadgeDefinition, error) {
	rows, err := r.db.Query("SELECT id, name, description, icon FROM badges ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	var badges []models.BadgeDefinition
	for rows.Next() {
		var b models.BadgeDefinition
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}

	return badges, nil
}

// ListEarnedIDs returns the set of badge ids already granted to a user
func (r *BadgeRepository) ListEarnedIDs(userID string) (map[string]bool, error) {
	rows, err := r.db.Query("SELECT badge_id FROM user_badges WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query earned badges: %w", err)
	}
	defer rows.Close()

	earned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan earned badge id: %w", err)
		}
		earned[id] = true
	}

	return earned, nil
}

// ListUserBadges returns a user's earned badges with grant timestamps
func (r *BadgeRepository) ListUserBadges(userID string) ([]models.UserBadge, error) {
	rows, err := r.db.Query(
		"SELECT user_id, badge_id, earned_at FROM user_badges WHERE user_id = ? ORDER BY earned_at",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user badges: %w", err)
	}
	defer rows.Close()

	var grants []models.UserBadge
	for rows.Next() {
		var g models.UserBadge
		if err := rows.Scan(&g.UserID, &g.BadgeID, &g.EarnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user badge: %w", err)
		}
		grants = append(grants, g)
	}

	return grants, nil
}

// GrantBadge records a badge grant for a user
func (r *BadgeRepository) GrantBadge(ctx context.Context, userID, badgeID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO user_badges (user_id, badge_id) VALUES (?, ?)",
		userID, badgeID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert badge grant: %w", err)
	}
	return nil
}
