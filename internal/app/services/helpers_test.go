package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/store"
)

// Shared fixture roles used across the service tests.
var (
	testAdmin      = models.User{ID: "admin", Name: "Admin", Email: "admin@test", RoleType: models.RoleAdmin}
	testSupervisor = models.User{ID: "sup", Name: "Dr. Supervisor", Email: "sup@test", RoleType: models.RoleSupervisor}
	testStudent    = models.User{ID: "stu", Name: "Student One", Email: "stu@test", RoleType: models.RoleStudent}
	testStudentTwo = models.User{ID: "stu2", Name: "Student Two", Email: "stu2@test", RoleType: models.RoleStudent}
)

// newTestStore builds a store over a throwaway snapshot file, pre-seeded
// with the given collections. Writing the snapshots up front keeps the
// bcrypt-hashing seed path out of the tests.
func newTestStore(t *testing.T, users []models.User, projects []models.Project, allocations []models.Allocation, reports []models.ProgressReport) *store.Store {
	t.Helper()

	snapshots, err := store.NewSnapshotStore(filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { snapshots.Close() })

	if users == nil {
		users = []models.User{}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	if allocations == nil {
		allocations = []models.Allocation{}
	}
	if reports == nil {
		reports = []models.ProgressReport{}
	}

	require.NoError(t, snapshots.Save(store.CollectionUsers, users))
	require.NoError(t, snapshots.Save(store.CollectionProjects, projects))
	require.NoError(t, snapshots.Save(store.CollectionAllocations, allocations))
	require.NoError(t, snapshots.Save(store.CollectionReports, reports))

	return store.New(snapshots, zerolog.Nop())
}

func availableProject(id, supervisorID string) models.Project {
	now := time.Now()
	return models.Project{
		ID:           id,
		Title:        "Project " + id,
		Description:  "Description for " + id,
		Status:       models.ProjectAvailable,
		SupervisorID: supervisorID,
		MaxStudents:  1,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func strPtr(s string) *string { return &s }
