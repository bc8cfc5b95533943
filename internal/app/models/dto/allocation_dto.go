package dto

import "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"

// AssignStudentRequest represents a one-off manual assignment by an admin
type AssignStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
}

// AllocationRunResponse summarizes one bulk allocation pass
type AllocationRunResponse struct {
	Created     int                 `json:"created"`
	Allocations []models.Allocation `json:"allocations"`
}
