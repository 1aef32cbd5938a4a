package models

import "time"

// Reward represents a redeemable item in the rewards marketplace
type Reward struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	CostPoints  int    `json:"cost_points" db:"cost_points"`
	Stock       int    `json:"stock" db:"stock"`
}

// Redemption represents a completed reward redemption
type Redemption struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	RewardID  string    `json:"reward_id" db:"reward_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PointsEntry represents one row of the append-only points ledger
type PointsEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Delta     int       `json:"delta" db:"delta"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Points ledger reason constants
const (
	PointsReasonReport     = "report_submitted"
	PointsReasonCleanup    = "cleanup_completed"
	PointsReasonRedemption = "reward_redeemed"
)

// LeaderboardEntry represents one row of the points leaderboard
type LeaderboardEntry struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Points      int    `json:"points"`
}
