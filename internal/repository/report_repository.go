package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// ReportRepository handles database operations for incident reports
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report
func (r *ReportRepository) Create(report *models.Report) error {
	query := `INSERT INTO reports (id, user_id, lake_id, lake_name, latitude, longitude,
		category, severity, description, photo_count, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		report.ID, report.UserID, report.LakeID, report.LakeName,
		report.Latitude, report.Longitude,
		report.Category, report.Severity, report.Description, report.PhotoCount,
		report.Status, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

// GetByID retrieves a single report, or nil when not found
func (r *ReportRepository) GetByID(id string) (*models.Report, error) {
	query := `SELECT id, user_id, lake_id, lake_name, latitude, longitude,
		category, severity, description, photo_count, status,
		cleanup_completed_by, cleanup_completed_at, created_at, updated_at
		FROM reports WHERE id = ?`

	var report models.Report
	err := r.db.QueryRow(query, id).Scan(
		&report.ID, &report.UserID, &report.LakeID, &report.LakeName,
		&report.Latitude, &report.Longitude,
		&report.Category, &report.Severity, &report.Description, &report.PhotoCount,
		&report.Status, &report.CleanupCompletedBy, &report.CleanupCompletedAt,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &report, nil
}

// List retrieves reports with filtering and pagination
func (r *ReportRepository) List(filter models.ReportFilter) ([]models.Report, int64, error) {
	query := `SELECT id, user_id, lake_id, lake_name, latitude, longitude,
		category, severity, description, photo_count, status,
		cleanup_completed_by, cleanup_completed_at, created_at, updated_at
		FROM reports`

	var conditions []string
	var args []interface{}

	if filter.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.LakeID != "" {
		conditions = append(conditions, "lake_id = ?")
		args = append(args, filter.LakeID)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Severity != "" {
		conditions = append(conditions, "severity = ?")
		args = append(args, filter.Severity)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, time.Unix(filter.StartTime, 0).UTC())
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, time.Unix(filter.EndTime, 0).UTC())
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM reports"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	if filter.PageSize > 500 {
		filter.PageSize = 500
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var report models.Report
		err := rows.Scan(
			&report.ID, &report.UserID, &report.LakeID, &report.LakeName,
			&report.Latitude, &report.Longitude,
			&report.Category, &report.Severity, &report.Description, &report.PhotoCount,
			&report.Status, &report.CleanupCompletedBy, &report.CleanupCompletedAt,
			&report.CreatedAt, &report.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, total, nil
}

// UpdateStatus changes a report's lifecycle status
func (r *ReportRepository) UpdateStatus(id, status string) error {
	result, err := r.db.Exec(
		"UPDATE reports SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CompleteCleanup records a cleanup completion on a report
func (r *ReportRepository) CompleteCleanup(id, userID string, completedAt time.Time) error {
	result, err := r.db.Exec(
		`UPDATE reports SET cleanup_completed_by = ?, cleanup_completed_at = ?,
			status = ?, updated_at = ? WHERE id = ? AND cleanup_completed_by = ''`,
		userID, completedAt, models.ReportStatusResolved, completedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete cleanup: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cleanup result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CountByUser returns how many reports a user has submitted
func (r *ReportRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM reports WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user reports: %w", err)
	}
	return count, nil
}

// CountCleanupsByUser returns how many cleanups a user has completed
func (r *ReportRepository) CountCleanupsByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM reports WHERE cleanup_completed_by = ?", userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user cleanups: %w", err)
	}
	return count, nil
}

// ListMetaByUser returns the per-report metadata the badge rules evaluate
func (r *ReportRepository) ListMetaByUser(userID string) ([]models.ReportMeta, error) {
	query := `SELECT category, severity, photo_count, LENGTH(description), created_at
		FROM reports WHERE user_id = ? ORDER BY created_at`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query report metadata: %w", err)
	}
	defer rows.Close()

	var metas []models.ReportMeta
	for rows.Next() {
		var meta models.ReportMeta
		err := rows.Scan(&meta.Category, &meta.Severity, &meta.PhotoCount,
			&meta.DescriptionLength, &meta.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report metadata: %w", err)
		}
		metas = append(metas, meta)
	}

	return metas, nil
}
