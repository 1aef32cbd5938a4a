package models

import "time"

// Report represents a water-pollution incident report
type Report struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	// Selected water body (may be empty when the resolver found nothing)
	LakeID   string `json:"lake_id,omitempty" db:"lake_id"`
	LakeName string `json:"lake_name,omitempty" db:"lake_name"`

	// Report location
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`

	// Incident details
	Category    string `json:"category" db:"category"`
	Severity    string `json:"severity" db:"severity"`
	Description string `json:"description" db:"description"`
	PhotoCount  int    `json:"photo_count" db:"photo_count"`

	// Lifecycle
	Status             string     `json:"status" db:"status"`
	CleanupCompletedBy string     `json:"cleanup_completed_by,omitempty" db:"cleanup_completed_by"`
	CleanupCompletedAt *time.Time `json:"cleanup_completed_at,omitempty" db:"cleanup_completed_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Report status constants
const (
	ReportStatusSubmitted = "submitted"
	ReportStatusVerified  = "verified"
	ReportStatusResolved  = "resolved"
	ReportStatusRejected  = "rejected"
)

// Report category constants
const (
	CategoryAlgae      = "algae"
	CategoryTrash      = "trash"
	CategoryOilSpill   = "oil_spill"
	CategorySewage     = "sewage"
	CategoryDeadFish   = "dead_fish"
	CategoryFoam       = "foam"
	CategoryDiscolored = "discolored_water"
	CategoryOther      = "other"
)

// Report severity constants
const (
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeveritySevere   = "severe"
	SeverityCritical = "critical"
)

// ValidCategories lists the accepted report categories
var ValidCategories = []string{
	CategoryAlgae, CategoryTrash, CategoryOilSpill, CategorySewage,
	CategoryDeadFish, CategoryFoam, CategoryDiscolored, CategoryOther,
}

// ValidSeverities lists the accepted report severities
var ValidSeverities = []string{
	SeverityLow, SeverityModerate, SeverityHigh, SeveritySevere, SeverityCritical,
}

// ValidStatusTransition reports whether a status change is allowed
func ValidStatusTransition(from, to string) bool {
	switch from {
	case ReportStatusSubmitted:
		return to == ReportStatusVerified || to == ReportStatusRejected
	case ReportStatusVerified:
		return to == ReportStatusResolved || to == ReportStatusRejected
	default:
		return false
	}
}
