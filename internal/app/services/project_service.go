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

// ProjectService defines the interface for project operations
type ProjectService interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetProjectsForSupervisor(ctx context.Context, supervisorID string) ([]models.Project, error)
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest, actor models.User) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, patch *dto.UpdateProjectRequest, actor models.User) (*models.Project, error)
	DeleteProject(ctx context.Context, id string, actor models.User) error
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	store *store.Store
}

// NewProjectService creates a new project service instance
func NewProjectService(st *store.Store) ProjectService {
	return &projectServiceImpl{store: st}
}

// GetProjects returns all projects in insertion order.
func (s *projectServiceImpl) GetProjects(ctx context.Context) ([]models.Project, error) {
	return s.store.Projects(), nil
}

// GetProjectByID returns one project.
func (s *projectServiceImpl) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project, ok := s.store.ProjectByID(id)
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	return &project, nil
}

// GetProjectsForSupervisor returns the projects owned by a supervisor.
func (s *projectServiceImpl) GetProjectsForSupervisor(ctx context.Context, supervisorID string) ([]models.Project, error) {
	return s.store.ProjectsForSupervisor(supervisorID), nil
}

// CreateProject creates a new project owned by the acting supervisor. Status
// is always forced to Available regardless of input.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest, actor models.User) (*models.Project, error) {
	if actor.RoleType != models.RoleSupervisor {
		return nil, apperrors.ErrPermissionDenied
	}

	maxStudents := req.MaxStudents
	if maxStudents <= 0 {
		maxStudents = 1
	}

	now := time.Now()
	project := models.Project{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Status:           models.ProjectAvailable,
		SupervisorID:     actor.ID,
		SkillsRequired:   req.SkillsRequired,
		Objectives:       req.Objectives,
		ExpectedOutcomes: req.ExpectedOutcomes,
		Prerequisites:    req.Prerequisites,
		MaxStudents:      maxStudents,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.CreateProject(project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject merges non-nil patch fields and stamps UpdatedAt. Patched
// fields are not re-validated against other collections: a supervisorId
// pointing at a non-existent user is tolerated and resolves to unknown at
// read time.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, id string, patch *dto.UpdateProjectRequest, actor models.User) (*models.Project, error) {
	if actor.RoleType != models.RoleSupervisor && actor.RoleType != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	project, ok := s.store.ProjectByID(id)
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.SupervisorID != nil {
		project.SupervisorID = *patch.SupervisorID
	}
	if patch.SkillsRequired != nil {
		project.SkillsRequired = patch.SkillsRequired
	}
	if patch.Objectives != nil {
		project.Objectives = patch.Objectives
	}
	if patch.ExpectedOutcomes != nil {
		project.ExpectedOutcomes = *patch.ExpectedOutcomes
	}
	if patch.Prerequisites != nil {
		project.Prerequisites = *patch.Prerequisites
	}
	if patch.MaxStudents != nil {
		project.MaxStudents = *patch.MaxStudents
	}
	if patch.IsActive != nil {
		project.IsActive = *patch.IsActive
	}
	project.UpdatedAt = time.Now()

	if err := s.store.SaveProject(project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project and cascades to its allocations.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, id string, actor models.User) error {
	if actor.RoleType != models.RoleSupervisor && actor.RoleType != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	return s.store.DeleteProject(id)
}
