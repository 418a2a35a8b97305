package services

import (
	"context"
	"fmt"

	"github.com/reportesapp/backend/internal/models"
	"gorm.io/gorm"
)

// ReportService wraps the persistence operations for incident reports.
// Reports are write-once: they are never updated or deleted here.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Create inserts a new report row and fills in the generated id.
func (s *ReportService) Create(ctx context.Context, r *models.Report) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// List returns all reports, most recent first.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ListByUser returns the reports owned by userID, most recent first.
func (s *ReportService) ListByUser(ctx context.Context, userID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports for user %d: %w", userID, err)
	}
	return reports, nil
}
