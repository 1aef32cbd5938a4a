package models

// SubmitReportRequest is the payload for creating an incident report
type SubmitReportRequest struct {
	LakeID      string  `json:"lake_id"`
	LakeName    string  `json:"lake_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `json:"category" binding:"required"`
	Severity    string  `json:"severity" binding:"required"`
	Description string  `json:"description"`
	PhotoCount  int     `json:"photo_count"`
}

// UpdateReportStatusRequest is the payload for a status change
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitReportResult pairs the stored report with any badges earned by
// the submission
type SubmitReportResult struct {
	Report       *Report           `json:"report"`
	EarnedBadges []BadgeDefinition `json:"earned_badges"`
}

// CleanupResult pairs the updated report with any badges earned by the
// cleanup
type CleanupResult struct {
	Report       *Report           `json:"report"`
	EarnedBadges []BadgeDefinition `json:"earned_badges"`
}
