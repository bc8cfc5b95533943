package models

import (
	"time"
)

// Allocation links exactly one student to one project. A student holds at
// most one allocation and is never reconsidered by the allocation engine
// once allocated. Allocations are created and deleted, never updated.
type Allocation struct {
	ID           string    `json:"id" example:"9c1e4b7a-2d3f-4a5c-8b6d-0e7f1a2c3d94"`
	StudentID    string    `json:"studentId"`
	ProjectID    string    `json:"projectId"`
	SupervisorID string    `json:"supervisorId"` // Denormalized from the project at creation time
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
}
