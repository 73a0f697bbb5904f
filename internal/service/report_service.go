package service

import (
	"context"
	"fmt"
	"time"

	"aicomply/internal/cache"
	"aicomply/internal/model"
	"aicomply/internal/repository"
)

// SystemReport is the full compliance picture of one system: the inventory
// entry, its latest classification and the state of its obligation
// checklist.
type SystemReport struct {
	System     *model.AISystem         `json:"system"`
	Latest     *model.Assessment       `json:"latestAssessment,omitempty"`
	Tasks      []*model.ObligationTask `json:"tasks"`
	OpenTasks  int                     `json:"openTasks"`
	DoneTasks  int                     `json:"doneTasks"`
	ReportedAt time.Time               `json:"reportedAt"`
}

// ReportService aggregates compliance data for the dashboard
type ReportService struct {
	systemRepo     repository.SystemRepo
	assessmentRepo repository.AssessmentRepo
	taskRepo       repository.TaskRepo
	summaryCache   cache.SummaryCache
}

// NewReportService creates a new report service
func NewReportService(
	systemRepo repository.SystemRepo,
	assessmentRepo repository.AssessmentRepo,
	taskRepo repository.TaskRepo,
	summaryCache cache.SummaryCache,
) *ReportService {
	return &ReportService{
		systemRepo:     systemRepo,
		assessmentRepo: assessmentRepo,
		taskRepo:       taskRepo,
		summaryCache:   summaryCache,
	}
}

// Summary returns the org-wide dashboard aggregate, cache-aside with a
// short TTL. Writers invalidate the cache so a fresh poll after any change
// recomputes.
func (s *ReportService) Summary(ctx context.Context, orgID string) (*model.ComplianceSummary, error) {
	if cached, err := s.summaryCache.Get(ctx, orgID); err == nil && cached != nil {
		return cached, nil
	}

	systems, err := s.systemRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list systems: %w", err)
	}

	byLevel, err := s.systemRepo.CountByRiskLevel(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count by risk level: %w", err)
	}

	open, done, err := s.taskRepo.CountByStatus(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	assessed := 0
	for _, system := range systems {
		if system.Status == model.SystemAssessed {
			assessed++
		}
	}

	summary := &model.ComplianceSummary{
		OrgID:           orgID,
		TotalSystems:    len(systems),
		Assessed:        assessed,
		ByRiskLevel:     byLevel,
		OpenObligations: open,
		DoneObligations: done,
		GeneratedAt:     time.Now(),
	}

	// Best effort: a failed cache write only costs the next recompute
	s.summaryCache.Set(ctx, summary)

	return summary, nil
}

// SystemReport compiles the per-system compliance report
func (s *ReportService) SystemReport(ctx context.Context, orgID, systemID string) (*SystemReport, error) {
	system, err := s.systemRepo.GetByID(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	if system == nil || system.OrgID != orgID {
		return nil, fmt.Errorf("system not found")
	}

	assessments, err := s.assessmentRepo.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}

	// Newest classified run wins; collecting runs are drafts
	var latest *model.Assessment
	for _, assessment := range assessments {
		if assessment.Status == model.AssessmentClassified {
			latest = assessment
			break
		}
	}

	tasks, err := s.taskRepo.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	report := &SystemReport{
		System:     system,
		Latest:     latest,
		Tasks:      tasks,
		ReportedAt: time.Now(),
	}
	for _, task := range tasks {
		if task.Status == model.TaskDone {
			report.DoneTasks++
		} else {
			report.OpenTasks++
		}
	}
	return report, nil
}
