package models

import (
	"time"
)

// Project defines a work item owned by a supervisor. Status moves
// Available -> Assigned -> Completed; only the first transition is driven by
// the allocation engine, the rest are manual edits.
type Project struct {
	ID               string        `json:"id" example:"3f2a9d1c-7b6e-4f5a-8c2d-1e9b0a4d6c73"`
	Title            string        `json:"title" example:"Blockchain-based Voting System"`
	Description      string        `json:"description"`
	Category         string        `json:"category,omitempty" example:"Distributed Systems"`
	Status           ProjectStatus `json:"status" example:"Available"`
	SupervisorID     string        `json:"supervisorId"` // Reference to a User with role SUPERVISOR
	SkillsRequired   []string      `json:"skillsRequired,omitempty"`
	Objectives       []string      `json:"objectives,omitempty"`
	ExpectedOutcomes string        `json:"expectedOutcomes,omitempty"`
	Prerequisites    string        `json:"prerequisites,omitempty"`
	MaxStudents      int           `json:"maxStudents" example:"1"` // Capacity, defaults to 1; the allocation engine treats every project as single-capacity
	IsActive         bool          `json:"isActive" example:"true"`
	CreatedAt        time.Time     `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	UpdatedAt        time.Time     `json:"updatedAt" example:"2024-01-02T15:30:00Z"`
}
