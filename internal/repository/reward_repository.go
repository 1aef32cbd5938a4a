package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecolake/ecolake-backend-go/internal/database"
	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// Redemption failure modes
var (
	ErrOutOfStock         = errors.New("reward out of stock")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// RewardRepository handles the reward catalog and redemptions
type RewardRepository struct {
	db *sql.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *sql.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// ListRewards returns the reward catalog
func (r *RewardRepository) ListRewards() ([]models.Reward, error) {
	rows, err := r.db.Query("SELECT id, name, description, cost_points, stock FROM rewards ORDER BY cost_points")
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	var rewards []models.Reward
	for rows.Next() {
		var reward models.Reward
		if err := rows.Scan(&reward.ID, &reward.Name, &reward.Description, &reward.CostPoints, &reward.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		rewards = append(rewards, reward)
	}

	return rewards, nil
}

// GetByID retrieves a single reward, or nil when not found
func (r *RewardRepository) GetByID(id string) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.QueryRow(
		"SELECT id, name, description, cost_points, stock FROM rewards WHERE id = ?", id,
	).Scan(&reward.ID, &reward.Name, &reward.Description, &reward.CostPoints, &reward.Stock)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}

	return &reward, nil
}

// Redeem decrements stock and debits points in one transaction. Stock
// and ledger move together or not at all.
func (r *RewardRepository) Redeem(userID, rewardID string) (*models.Redemption, error) {
	var redemption *models.Redemption

	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		var costPoints, stock int
		err := tx.QueryRow(
			"SELECT cost_points, stock FROM rewards WHERE id = ?", rewardID,
		).Scan(&costPoints, &stock)
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		if err != nil {
			return fmt.Errorf("failed to get reward for redemption: %w", err)
		}

		if stock <= 0 {
			return ErrOutOfStock
		}

		var balance int
		err = tx.QueryRow(
			"SELECT COALESCE(SUM(delta), 0) FROM points_ledger WHERE user_id = ?", userID,
		).Scan(&balance)
		if err != nil {
			return fmt.Errorf("failed to check balance: %w", err)
		}
		if balance < costPoints {
			return ErrInsufficientPoints
		}

		// Guard against concurrent redemptions draining the same unit
		result, err := tx.Exec(
			"UPDATE rewards SET stock = stock - 1 WHERE id = ? AND stock > 0", rewardID,
		)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check stock update: %w", err)
		}
		if affected == 0 {
			return ErrOutOfStock
		}

		if _, err := tx.Exec(
			"INSERT INTO points_ledger (user_id, delta, reason) VALUES (?, ?, ?)",
			userID, -costPoints, models.PointsReasonRedemption,
		); err != nil {
			return fmt.Errorf("failed to debit points: %w", err)
		}

		redemption = &models.Redemption{
			ID:        uuid.NewString(),
			UserID:    userID,
			RewardID:  rewardID,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := tx.Exec(
			"INSERT INTO redemptions (id, user_id, reward_id, created_at) VALUES (?, ?, ?, ?)",
			redemption.ID, redemption.UserID, redemption.RewardID, redemption.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert redemption: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return redemption, nil
}
