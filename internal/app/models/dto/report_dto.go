package dto

import "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"

// SubmitReportRequest represents a new progress report submission
type SubmitReportRequest struct {
	AllocationID string   `json:"allocationId" binding:"required"`
	ReportText   string   `json:"reportText" binding:"required"`
	Attachments  []string `json:"attachments"`
}

// UpdateReportRequest represents a report patch by the owning student. Any
// edit resets the report status to PENDING regardless of patch content.
type UpdateReportRequest struct {
	ReportText  *string  `json:"reportText,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// FeedbackRequest represents supervisor review input. Feedback text and the
// status transition are independent fields set together by the caller.
type FeedbackRequest struct {
	Feedback string               `json:"feedback" binding:"required"`
	Status   *models.ReportStatus `json:"status,omitempty" binding:"omitempty,oneof=APPROVED REJECTED"`
}
