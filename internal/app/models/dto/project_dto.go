package dto

import "github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"

// CreateProjectRequest represents a new project proposal. The server assigns
// the id, forces status to Available and stamps the timestamps.
type CreateProjectRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Category         string   `json:"category"`
	SkillsRequired   []string `json:"skillsRequired"`
	Objectives       []string `json:"objectives" binding:"required,min=1"`
	ExpectedOutcomes string   `json:"expectedOutcomes"`
	Prerequisites    string   `json:"prerequisites"`
	MaxStudents      int      `json:"maxStudents" binding:"omitempty,min=1"`
}

// UpdateProjectRequest represents a project patch. Only non-nil fields are
// merged; patched fields are not re-validated against other collections.
type UpdateProjectRequest struct {
	Title            *string               `json:"title,omitempty"`
	Description      *string               `json:"description,omitempty"`
	Category         *string               `json:"category,omitempty"`
	Status           *models.ProjectStatus `json:"status,omitempty" binding:"omitempty,oneof=Available Assigned Completed"`
	SupervisorID     *string               `json:"supervisorId,omitempty"`
	SkillsRequired   []string              `json:"skillsRequired,omitempty"`
	Objectives       []string              `json:"objectives,omitempty"`
	ExpectedOutcomes *string               `json:"expectedOutcomes,omitempty"`
	Prerequisites    *string               `json:"prerequisites,omitempty"`
	MaxStudents      *int                  `json:"maxStudents,omitempty" binding:"omitempty,min=1"`
	IsActive         *bool                 `json:"isActive,omitempty"`
}
