package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/store"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/metrics"
)

// AllocationService defines the interface for allocation operations
type AllocationService interface {
	GetAllocations(ctx context.Context) ([]models.Allocation, error)
	GetStudentAllocation(ctx context.Context, studentID string) (*models.Allocation, error)
	Run(ctx context.Context, actor models.User) ([]models.Allocation, error)
	AssignStudent(ctx context.Context, req *dto.AssignStudentRequest, actor models.User) (*models.Allocation, error)
}

// allocationServiceImpl implements the AllocationService interface
type allocationServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAllocationService creates a new allocation service instance
func NewAllocationService(st *store.Store, lgr zerolog.Logger) AllocationService {
	return &allocationServiceImpl{
		store:  st,
		logger: lgr,
	}
}

// GetAllocations returns all allocations in insertion order.
func (s *allocationServiceImpl) GetAllocations(ctx context.Context) ([]models.Allocation, error) {
	return s.store.Allocations(), nil
}

// GetStudentAllocation returns the single allocation for a student.
func (s *allocationServiceImpl) GetStudentAllocation(ctx context.Context, studentID string) (*models.Allocation, error) {
	allocation, ok := s.store.AllocationForStudent(studentID)
	if !ok {
		return nil, apperrors.ErrAllocationNotFound
	}
	return &allocation, nil
}

// Run executes one bulk allocation pass: every unallocated student is paired
// positionally with an available, unallocated project, in collection order.
// The i-th student gets the i-th project; whichever list is longer leaves its
// tail unallocated this round. Re-running with unchanged state is a no-op
// because every eligible pair was already consumed. No preference, skill or
// capacity signal is consulted.
func (s *allocationServiceImpl) Run(ctx context.Context, actor models.User) ([]models.Allocation, error) {
	if actor.RoleType != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	allocations := s.store.Allocations()
	allocatedStudents := map[string]bool{}
	allocatedProjects := map[string]bool{}
	for _, a := range allocations {
		allocatedStudents[a.StudentID] = true
		allocatedProjects[a.ProjectID] = true
	}

	var unassigned []models.User
	for _, u := range s.store.UsersByRole(models.RoleStudent) {
		if !allocatedStudents[u.ID] {
			unassigned = append(unassigned, u)
		}
	}

	var available []models.Project
	for _, p := range s.store.Projects() {
		if p.Status == models.ProjectAvailable && !allocatedProjects[p.ID] {
			available = append(available, p)
		}
	}

	now := time.Now()
	var created []models.Allocation
	for i, student := range unassigned {
		if i >= len(available) {
			break
		}
		project := available[i]
		created = append(created, models.Allocation{
			ID:           uuid.New().String(),
			StudentID:    student.ID,
			ProjectID:    project.ID,
			SupervisorID: project.SupervisorID,
			CreatedAt:    now,
		})
	}

	if err := s.store.ApplyAllocations(created, now); err != nil {
		return nil, err
	}

	metrics.AllocationRuns.Inc()
	metrics.AllocationsCreated.Add(float64(len(created)))
	s.logger.Info().
		Int("students", len(unassigned)).
		Int("projects", len(available)).
		Int("created", len(created)).
		Msg("Allocation pass completed")

	if created == nil {
		created = []models.Allocation{}
	}
	return created, nil
}

// AssignStudent records a single manual allocation. The student must be
// unallocated and the project Available and unallocated, the same
// eligibility the bulk pass computes.
func (s *allocationServiceImpl) AssignStudent(ctx context.Context, req *dto.AssignStudentRequest, actor models.User) (*models.Allocation, error) {
	if actor.RoleType != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	student, ok := s.store.UserByID(req.StudentID)
	if !ok || student.RoleType != models.RoleStudent {
		return nil, apperrors.ErrUserNotFound
	}
	if _, allocated := s.store.AllocationForStudent(student.ID); allocated {
		return nil, apperrors.ErrStudentAllocated
	}

	project, ok := s.store.ProjectByID(req.ProjectID)
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	if project.Status != models.ProjectAvailable {
		return nil, apperrors.ErrProjectNotAvailable
	}
	for _, a := range s.store.Allocations() {
		if a.ProjectID == project.ID {
			return nil, apperrors.ErrProjectNotAvailable
		}
	}

	now := time.Now()
	allocation := models.Allocation{
		ID:           uuid.New().String(),
		StudentID:    student.ID,
		ProjectID:    project.ID,
		SupervisorID: project.SupervisorID,
		CreatedAt:    now,
	}

	if err := s.store.ApplyAllocations([]models.Allocation{allocation}, now); err != nil {
		return nil, err
	}

	metrics.AllocationsCreated.Inc()
	s.logger.Info().
		Str("studentID", student.ID).
		Str("projectID", project.ID).
		Msg("Student manually assigned to project")

	return &allocation, nil
}
