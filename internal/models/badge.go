package models

import "time"

// BadgeDefinition represents a badge from the catalog. The catalog is
// content-managed; Name doubles as the lookup key into the rule table.
type BadgeDefinition struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon,omitempty" db:"icon"`
}

// UserBadge represents a badge grant recorded for a user
type UserBadge struct {
	UserID   string    `json:"user_id" db:"user_id"`
	BadgeID  string    `json:"badge_id" db:"badge_id"`
	EarnedAt time.Time `json:"earned_at" db:"earned_at"`
}
