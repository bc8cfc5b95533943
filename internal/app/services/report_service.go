package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/store"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
)

// ReportService defines the interface for progress report operations
type ReportService interface {
	GetReports(ctx context.Context) ([]models.ProgressReport, error)
	GetReportByID(ctx context.Context, id string, actor models.User) (*models.ProgressReport, error)
	GetReportsForStudent(ctx context.Context, studentID string) ([]models.ProgressReport, error)
	GetPendingReports(ctx context.Context, actor models.User) ([]models.ProgressReport, error)
	SubmitReport(ctx context.Context, req *dto.SubmitReportRequest, actor models.User) (*models.ProgressReport, error)
	UpdateReport(ctx context.Context, id string, patch *dto.UpdateReportRequest, actor models.User) (*models.ProgressReport, error)
	GiveFeedback(ctx context.Context, reportID string, req *dto.FeedbackRequest, actor models.User) (*models.ProgressReport, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	store *store.Store
}

// NewReportService creates a new report service instance
func NewReportService(st *store.Store) ReportService {
	return &reportServiceImpl{store: st}
}

// GetReports returns all progress reports.
func (s *reportServiceImpl) GetReports(ctx context.Context) ([]models.ProgressReport, error) {
	return s.store.Reports(), nil
}

// GetReportByID returns one report. Visible to the owning student, the
// supervisor reachable through the report's allocation, and admins.
func (s *reportServiceImpl) GetReportByID(ctx context.Context, id string, actor models.User) (*models.ProgressReport, error) {
	report, ok := s.store.ReportByID(id)
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}

	if actor.RoleType == models.RoleAdmin {
		return &report, nil
	}

	allocation, ok := s.store.AllocationByID(report.AllocationID)
	if !ok {
		// Dangling allocation reference: only admins can still read the report.
		return nil, apperrors.ErrPermissionDenied
	}

	switch actor.RoleType {
	case models.RoleStudent:
		if allocation.StudentID == actor.ID {
			return &report, nil
		}
	case models.RoleSupervisor:
		if project, ok := s.store.ProjectByID(allocation.ProjectID); ok && project.SupervisorID == actor.ID {
			return &report, nil
		}
	}
	return nil, apperrors.ErrPermissionDenied
}

// GetReportsForStudent returns the reports filed against the student's
// allocation, empty when the student has none.
func (s *reportServiceImpl) GetReportsForStudent(ctx context.Context, studentID string) ([]models.ProgressReport, error) {
	return s.store.ReportsForStudent(studentID), nil
}

// GetPendingReports returns PENDING reports awaiting the acting supervisor.
func (s *reportServiceImpl) GetPendingReports(ctx context.Context, actor models.User) ([]models.ProgressReport, error) {
	if actor.RoleType != models.RoleSupervisor {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.store.PendingReportsForSupervisor(actor.ID), nil
}

// SubmitReport creates a PENDING report against the acting student's own
// allocation.
func (s *reportServiceImpl) SubmitReport(ctx context.Context, req *dto.SubmitReportRequest, actor models.User) (*models.ProgressReport, error) {
	if actor.RoleType != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	allocation, ok := s.store.AllocationByID(req.AllocationID)
	if !ok {
		return nil, apperrors.ErrAllocationNotFound
	}
	if allocation.StudentID != actor.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	now := time.Now()
	report := models.ProgressReport{
		ID:             uuid.New().String(),
		AllocationID:   req.AllocationID,
		ReportText:     req.ReportText,
		Attachments:    req.Attachments,
		SubmissionDate: now,
		UpdatedAt:      now,
		Feedback:       nil,
		FeedbackDate:   nil,
		Status:         models.ReportPending,
		CreatedAt:      now,
	}

	if err := s.store.CreateReport(report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReport merges patch fields and stamps UpdatedAt. The status always
// resets to PENDING, whatever the patch touched: an edit invalidates any
// prior review.
func (s *reportServiceImpl) UpdateReport(ctx context.Context, id string, patch *dto.UpdateReportRequest, actor models.User) (*models.ProgressReport, error) {
	report, ok := s.store.ReportByID(id)
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}

	allocation, ok := s.store.AllocationByID(report.AllocationID)
	if !ok || actor.RoleType != models.RoleStudent || allocation.StudentID != actor.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	if patch.ReportText != nil {
		report.ReportText = *patch.ReportText
	}
	if patch.Attachments != nil {
		report.Attachments = patch.Attachments
	}
	report.UpdatedAt = time.Now()
	report.Status = models.ReportPending

	if err := s.store.SaveReport(report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GiveFeedback attaches supervisor feedback and optionally moves the report
// to APPROVED or REJECTED. The acting supervisor must own the project
// transitively reachable from the report's allocation.
func (s *reportServiceImpl) GiveFeedback(ctx context.Context, reportID string, req *dto.FeedbackRequest, actor models.User) (*models.ProgressReport, error) {
	if actor.RoleType != models.RoleSupervisor {
		return nil, apperrors.ErrPermissionDenied
	}

	report, ok := s.store.ReportByID(reportID)
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}

	allocation, ok := s.store.AllocationByID(report.AllocationID)
	if !ok {
		return nil, apperrors.ErrAllocationNotFound
	}
	project, ok := s.store.ProjectByID(allocation.ProjectID)
	if !ok || project.SupervisorID != actor.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	now := time.Now()
	report.Feedback = &req.Feedback
	report.FeedbackDate = &now
	if req.Status != nil {
		report.Status = *req.Status
	}
	report.UpdatedAt = now

	if err := s.store.SaveReport(report); err != nil {
		return nil, err
	}
	return &report, nil
}
