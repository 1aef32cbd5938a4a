package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecolake/ecolake-backend-go/internal/badges"
	"github.com/ecolake/ecolake-backend-go/internal/geo"
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
	"github.com/ecolake/ecolake-backend-go/pkg/logger"
)

// ReportService handles business logic for incident reports: submission,
// cleanup completion, and the points/badge side effects of both
type ReportService struct {
	reports   *repository.ReportRepository
	badgeRepo *repository.BadgeRepository
	points    *repository.PointsRepository
	evaluator *badges.Evaluator

	reportPoints  int
	cleanupPoints int
}

// NewReportService creates a new report service
func NewReportService(
	reports *repository.ReportRepository,
	badgeRepo *repository.BadgeRepository,
	points *repository.PointsRepository,
	evaluator *badges.Evaluator,
	reportPoints, cleanupPoints int,
) *ReportService {
	return &ReportService{
		reports:       reports,
		badgeRepo:     badgeRepo,
		points:        points,
		evaluator:     evaluator,
		reportPoints:  reportPoints,
		cleanupPoints: cleanupPoints,
	}
}

// SubmitReport validates and stores a report, credits points, and runs
// badge evaluation against the user's fresh activity aggregate
func (s *ReportService) SubmitReport(ctx context.Context, userID string, req models.SubmitReportRequest) (*models.SubmitReportResult, error) {
	if err := geo.ValidateCoordinate(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}
	if !contains(models.ValidCategories, req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", geo.ErrInvalidArgument, req.Category)
	}
	if !contains(models.ValidSeverities, req.Severity) {
		return nil, fmt.Errorf("%w: unknown severity %q", geo.ErrInvalidArgument, req.Severity)
	}

	now := time.Now().UTC()
	report := &models.Report{
		ID:          uuid.NewString(),
		UserID:      userID,
		LakeID:      req.LakeID,
		LakeName:    req.LakeName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		PhotoCount:  req.PhotoCount,
		Status:      models.ReportStatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.reports.Create(report); err != nil {
		return nil, err
	}

	if err := s.points.Append(userID, s.reportPoints, models.PointsReasonReport); err != nil {
		// The report is already durable; points can be reconciled later
		logger.GetLogger("reports").Errorf("failed to credit report points for user %s: %v", userID, err)
	}

	earned := s.evaluateBadges(ctx, userID)

	return &models.SubmitReportResult{Report: report, EarnedBadges: earned}, nil
}

// CompleteCleanup marks a report's cleanup done, credits points, and
// re-runs badge evaluation
func (s *ReportService) CompleteCleanup(ctx context.Context, reportID, userID string) (*models.CleanupResult, error) {
	if err := s.reports.CompleteCleanup(reportID, userID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.points.Append(userID, s.cleanupPoints, models.PointsReasonCleanup); err != nil {
		logger.GetLogger("reports").Errorf("failed to credit cleanup points for user %s: %v", userID, err)
	}

	report, err := s.reports.GetByID(reportID)
	if err != nil {
		return nil, err
	}

	earned := s.evaluateBadges(ctx, userID)

	return &models.CleanupResult{Report: report, EarnedBadges: earned}, nil
}

// GetReport retrieves a single report
func (s *ReportService) GetReport(id string) (*models.Report, error) {
	return s.reports.GetByID(id)
}

// ListReports retrieves reports with filtering and pagination
func (s *ReportService) ListReports(filter models.ReportFilter) ([]models.Report, int64, error) {
	return s.reports.List(filter)
}

// UpdateStatus applies a lifecycle status change
func (s *ReportService) UpdateStatus(id, status string) error {
	report, err := s.reports.GetByID(id)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("report %s: %w", id, sql.ErrNoRows)
	}
	if !models.ValidStatusTransition(report.Status, status) {
		return fmt.Errorf("%w: cannot move report from %s to %s", geo.ErrInvalidArgument, report.Status, status)
	}
	return s.reports.UpdateStatus(id, status)
}

// evaluateBadges assembles the user's fresh activity aggregate and runs
// the rule evaluator. Any failure here is logged and swallowed: badge
// grants are invisible side effects that requalify on the next activity.
func (s *ReportService) evaluateBadges(ctx context.Context, userID string) []models.BadgeDefinition {
	log := logger.GetLogger("reports")

	aggregate, err := s.AssembleActivity(userID)
	if err != nil {
		log.Errorf("failed to assemble activity for user %s: %v", userID, err)
		return []models.BadgeDefinition{}
	}

	catalog, err := s.badgeRepo.ListBadges()
	if err != nil {
		log.Errorf("failed to load badge catalog: %v", err)
		return []models.BadgeDefinition{}
	}

	earned, err := s.badgeRepo.ListEarnedIDs(userID)
	if err != nil {
		log.Errorf("failed to load earned badges for user %s: %v", userID, err)
		return []models.BadgeDefinition{}
	}

	return s.evaluator.Evaluate(ctx, userID, *aggregate, catalog, earned)
}

// AssembleActivity builds the activity snapshot badge rules evaluate
func (s *ReportService) AssembleActivity(userID string) (*models.UserActivityAggregate, error) {
	reportCount, err := s.reports.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	cleanupCount, err := s.reports.CountCleanupsByUser(userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.points.Balance(userID)
	if err != nil {
		return nil, err
	}

	metas, err := s.reports.ListMetaByUser(userID)
	if err != nil {
		return nil, err
	}

	return &models.UserActivityAggregate{
		ReportCount:  reportCount,
		CleanupCount: cleanupCount,
		Points:       balance,
		Reports:      metas,
	}, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
