package services

import (
	"context"

	"legalcase/internal/repositories"
)

// ReportService exposes the read-only joined views and dashboard counters.
type ReportService struct {
	reportRepo *repositories.ReportRepository
}

func NewReportService(reportRepo *repositories.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

func (s *ReportService) View(ctx context.Context, table string) ([]map[string]any, error) {
	return s.reportRepo.View(ctx, table)
}

func (s *ReportService) Dashboard(ctx context.Context) (map[string]int64, error) {
	return s.reportRepo.DashboardCounts(ctx)
}
