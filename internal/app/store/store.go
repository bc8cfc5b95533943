// Package store holds the authoritative in-memory collections of the portal
// and mirrors every mutation to a local snapshot.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/metrics"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/seed"
)

// Store owns the four entity collections. All reads return copies; all
// mutations happen under the write lock and re-serialize every collection to
// the snapshot store before returning. The lock guarantees memory safety
// only: two logically concurrent read-then-write call sequences can still
// overwrite each other, the system assumes single-session usage.
type Store struct {
	mu        sync.RWMutex
	snapshots *SnapshotStore
	logger    zerolog.Logger

	users       []models.User
	projects    []models.Project
	allocations []models.Allocation
	reports     []models.ProgressReport
}

// New constructs the store, loading each collection from its snapshot. A
// collection whose snapshot is missing or malformed is restored from the seed
// dataset; the others keep their persisted state, so a corrupted store can
// leave collections mutually inconsistent, as the portal always tolerated.
func New(snapshots *SnapshotStore, lgr zerolog.Logger) *Store {
	s := &Store{
		snapshots: snapshots,
		logger:    lgr,
	}

	s.users = loadCollection(snapshots, lgr, CollectionUsers, func() []models.User { return seed.Users(lgr) })
	s.projects = loadCollection(snapshots, lgr, CollectionProjects, seed.Projects)
	s.allocations = loadCollection(snapshots, lgr, CollectionAllocations, seed.Allocations)
	s.reports = loadCollection(snapshots, lgr, CollectionReports, seed.Reports)

	return s
}

// loadCollection reads one collection from the snapshot store, falling back
// to the seed dataset when the snapshot is absent or cannot be decoded.
func loadCollection[T any](snapshots *SnapshotStore, lgr zerolog.Logger, key string, seedFn func() []T) []T {
	var items []T
	found, err := snapshots.Load(key, &items)
	if err != nil {
		lgr.Warn().Err(err).Str("collection", key).Msg("Snapshot load failed, falling back to seed data")
		metrics.SnapshotLoadFailures.Inc()
		return seedFn()
	}
	if !found {
		lgr.Info().Str("collection", key).Msg("No snapshot found, seeding collection")
		return seedFn()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// persistLocked mirrors all four collections to the snapshot store. Callers
// must hold the write lock. The first failing collection aborts the pass,
// the snapshot is then partially stale until the next successful mutation.
func (s *Store) persistLocked() error {
	if err := s.snapshots.Save(CollectionUsers, s.users); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	if err := s.snapshots.Save(CollectionProjects, s.projects); err != nil {
		return fmt.Errorf("persist projects: %w", err)
	}
	if err := s.snapshots.Save(CollectionAllocations, s.allocations); err != nil {
		return fmt.Errorf("persist allocations: %w", err)
	}
	if err := s.snapshots.Save(CollectionReports, s.reports); err != nil {
		return fmt.Errorf("persist reports: %w", err)
	}
	return nil
}

// --- Users ---

// Users returns a copy of the user collection in insertion order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID looks up a user by id.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail looks up a user by exact, case-sensitive email match.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// UsersByRole filters the user collection by role.
func (s *Store) UsersByRole(role models.RoleType) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.User{}
	for _, u := range s.users {
		if u.RoleType == role {
			out = append(out, u)
		}
	}
	return out
}

// CreateUser appends a new user. The email uniqueness check happens inside
// the critical section so concurrent registrations cannot both pass it.
func (s *Store) CreateUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.users = append(s.users, user)
	return s.persistLocked()
}

// SaveUser replaces an existing user record by id. The email must not
// collide with any other account, so a profile edit cannot bend the
// uniqueness invariant that CreateUser enforces.
func (s *Store) SaveUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID != user.ID && u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = user
			return s.persistLocked()
		}
	}
	return apperrors.ErrUserNotFound
}

// DeleteUser removes a user and cascades: every allocation whose studentId
// references the user is removed as well.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrUserNotFound
	}
	s.users = append(s.users[:idx], s.users[idx+1:]...)

	kept := s.allocations[:0]
	for _, a := range s.allocations {
		if a.StudentID != id {
			kept = append(kept, a)
		}
	}
	s.allocations = kept

	return s.persistLocked()
}

// --- Projects ---

// cloneProject detaches the slice fields so callers cannot write through to
// store state.
func cloneProject(p models.Project) models.Project {
	p.SkillsRequired = append([]string(nil), p.SkillsRequired...)
	p.Objectives = append([]string(nil), p.Objectives...)
	return p
}

// Projects returns a copy of the project collection in insertion order.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

// ProjectByID looks up a project by id.
func (s *Store) ProjectByID(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), true
		}
	}
	return models.Project{}, false
}

// ProjectsForSupervisor filters projects by owning supervisor.
func (s *Store) ProjectsForSupervisor(supervisorID string) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Project{}
	for _, p := range s.projects {
		if p.SupervisorID == supervisorID {
			out = append(out, cloneProject(p))
		}
	}
	return out
}

// CreateProject appends a new project.
func (s *Store) CreateProject(project models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, project)
	return s.persistLocked()
}

// SaveProject replaces an existing project record by id.
func (s *Store) SaveProject(project models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID == project.ID {
			s.projects[i] = project
			return s.persistLocked()
		}
	}
	return apperrors.ErrProjectNotFound
}

// DeleteProject removes a project and cascades: every allocation whose
// projectId references the project is removed as well.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrProjectNotFound
	}
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)

	kept := s.allocations[:0]
	for _, a := range s.allocations {
		if a.ProjectID != id {
			kept = append(kept, a)
		}
	}
	s.allocations = kept

	return s.persistLocked()
}

// --- Allocations ---

// Allocations returns a copy of the allocation collection in insertion order.
func (s *Store) Allocations() []models.Allocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Allocation, len(s.allocations))
	copy(out, s.allocations)
	return out
}

// AllocationByID looks up an allocation by id.
func (s *Store) AllocationByID(id string) (models.Allocation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.allocations {
		if a.ID == id {
			return a, true
		}
	}
	return models.Allocation{}, false
}

// AllocationForStudent returns the single allocation for a student, if any.
// First match wins; the one-allocation-per-student invariant means at most
// one exists under correct operation.
func (s *Store) AllocationForStudent(studentID string) (models.Allocation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.allocations {
		if a.StudentID == studentID {
			return a, true
		}
	}
	return models.Allocation{}, false
}

// AllocationsForSupervisor returns allocations reachable through the
// supervisor's project ownership.
func (s *Store) AllocationsForSupervisor(supervisorID string) []models.Allocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := map[string]bool{}
	for _, p := range s.projects {
		if p.SupervisorID == supervisorID {
			owned[p.ID] = true
		}
	}
	out := []models.Allocation{}
	for _, a := range s.allocations {
		if owned[a.ProjectID] {
			out = append(out, a)
		}
	}
	return out
}

// ApplyAllocations appends a batch of allocations and flips each referenced
// project to Assigned, persisting once for the whole batch.
func (s *Store) ApplyAllocations(allocs []models.Allocation, now time.Time) error {
	if len(allocs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := map[string]bool{}
	for _, a := range allocs {
		assigned[a.ProjectID] = true
	}
	for i, p := range s.projects {
		if assigned[p.ID] {
			s.projects[i].Status = models.ProjectAssigned
			s.projects[i].UpdatedAt = now
		}
	}
	s.allocations = append(s.allocations, allocs...)

	return s.persistLocked()
}

// --- Progress reports ---

// cloneReport detaches the attachments slice so callers cannot write through
// to store state.
func cloneReport(r models.ProgressReport) models.ProgressReport {
	r.Attachments = append([]string(nil), r.Attachments...)
	return r
}

// Reports returns a copy of the report collection in insertion order.
func (s *Store) Reports() []models.ProgressReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ProgressReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, cloneReport(r))
	}
	return out
}

// ReportByID looks up a progress report by id.
func (s *Store) ReportByID(id string) (models.ProgressReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return cloneReport(r), true
		}
	}
	return models.ProgressReport{}, false
}

// ReportsForStudent resolves the student's allocation and filters reports by
// it. Students without an allocation have no reports.
func (s *Store) ReportsForStudent(studentID string) []models.ProgressReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var allocID string
	for _, a := range s.allocations {
		if a.StudentID == studentID {
			allocID = a.ID
			break
		}
	}
	out := []models.ProgressReport{}
	if allocID == "" {
		return out
	}
	for _, r := range s.reports {
		if r.AllocationID == allocID {
			out = append(out, cloneReport(r))
		}
	}
	return out
}

// PendingReportsForSupervisor returns PENDING reports on allocations
// reachable through the supervisor's project ownership.
func (s *Store) PendingReportsForSupervisor(supervisorID string) []models.ProgressReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := map[string]bool{}
	for _, p := range s.projects {
		if p.SupervisorID == supervisorID {
			owned[p.ID] = true
		}
	}
	supervised := map[string]bool{}
	for _, a := range s.allocations {
		if owned[a.ProjectID] {
			supervised[a.ID] = true
		}
	}
	out := []models.ProgressReport{}
	for _, r := range s.reports {
		if supervised[r.AllocationID] && r.Status == models.ReportPending {
			out = append(out, cloneReport(r))
		}
	}
	return out
}

// CreateReport appends a new progress report.
func (s *Store) CreateReport(report models.ProgressReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	return s.persistLocked()
}

// SaveReport replaces an existing report record by id.
func (s *Store) SaveReport(report models.ProgressReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reports {
		if r.ID == report.ID {
			s.reports[i] = report
			return s.persistLocked()
		}
	}
	return apperrors.ErrReportNotFound
}
