package models

import "time"

// ReportMeta carries the per-report metadata the badge rules evaluate.
// Assembled by the repository layer; never mutated by the evaluator.
type ReportMeta struct {
	Category          string    `json:"category" db:"category"`
	Severity          string    `json:"severity" db:"severity"`
	PhotoCount        int       `json:"photo_count" db:"photo_count"`
	DescriptionLength int       `json:"description_length" db:"description_length"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// UserActivityAggregate is a snapshot of one user's activity, used as a
// pure input to badge evaluation
type UserActivityAggregate struct {
	ReportCount  int          `json:"report_count"`
	CleanupCount int          `json:"cleanup_count"`
	Points       int          `json:"points"`
	Reports      []ReportMeta `json:"reports"`
}
