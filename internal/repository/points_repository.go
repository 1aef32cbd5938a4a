package repository

import (
	"database/sql"
	"fmt"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// PointsRepository handles the append-only points ledger
type PointsRepository struct {
	db *sql.DB
}

// NewPointsRepository creates a new points repository
func NewPointsRepository(db *sql.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

// Append adds a ledger entry for a user
func (r *PointsRepository) Append(userID string, delta int, reason string) error {
	_, err := r.db.Exec(
		"INSERT INTO points_ledger (user_id, delta, reason) VALUES (?, ?, ?)",
		userID, delta, reason,
	)
	if err != nil {
		return fmt.Errorf("failed to append points entry: %w", err)
	}
	return nil
}

// Balance returns a user's current point balance
func (r *PointsRepository) Balance(userID string) (int, error) {
	var balance int
	err := r.db.QueryRow(
		"SELECT COALESCE(SUM(delta), 0) FROM points_ledger WHERE user_id = ?", userID,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to sum points ledger: %w", err)
	}
	return balance, nil
}

// History returns a user's ledger entries, newest first
func (r *PointsRepository) History(userID string, limit int) ([]models.PointsEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, user_id, delta, reason, created_at FROM points_ledger
			WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query points history: %w", err)
	}
	defer rows.Close()

	var entries []models.PointsEntry
	for rows.Next() {
		var e models.PointsEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Delta, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan points entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Leaderboard returns the top users by point balance
func (r *PointsRepository) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(
		`SELECT l.user_id, COALESCE(u.display_name, ''), SUM(l.delta) AS balance
			FROM points_ledger l
			LEFT JOIN users u ON u.id = l.user_id
			GROUP BY l.user_id
			ORDER BY balance DESC
			LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.Points); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
