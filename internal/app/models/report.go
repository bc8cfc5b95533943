package models

import (
	"time"
)

// ProgressReport is a student's submission against their allocation. Any
// edit by the student resets the status to PENDING, invalidating prior
// review state.
type ProgressReport struct {
	ID             string       `json:"id" example:"d5b8e2f1-6a4c-4d7b-9e3f-2c1a0b8d5e62"`
	AllocationID   string       `json:"allocationId"`
	ReportText     string       `json:"reportText"`
	Attachments    []string     `json:"attachments,omitempty"` // Ordered file references
	SubmissionDate time.Time    `json:"submissionDate" example:"2024-03-01T09:00:00Z"`
	UpdatedAt      time.Time    `json:"updatedAt" example:"2024-03-02T11:00:00Z"`
	Feedback       *string      `json:"feedback"`
	FeedbackDate   *time.Time   `json:"feedbackDate"`
	Status         ReportStatus `json:"status" example:"PENDING"`
	CreatedAt      time.Time    `json:"createdAt" example:"2024-03-01T09:00:00Z"`
}
