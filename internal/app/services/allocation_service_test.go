package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
)

func TestRunPairsStudentsAndProjectsInOrder(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent, testStudentTwo},
		[]models.Project{availableProject("p1", "sup"), availableProject("p2", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	created, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, created, 2)

	// Pairing is positional: first student to first project
	assert.Equal(t, "stu", created[0].StudentID)
	assert.Equal(t, "p1", created[0].ProjectID)
	assert.Equal(t, "stu2", created[1].StudentID)
	assert.Equal(t, "p2", created[1].ProjectID)

	// Supervisor is denormalized from the project
	assert.Equal(t, "sup", created[0].SupervisorID)

	for _, a := range created {
		project, ok := st.ProjectByID(a.ProjectID)
		require.True(t, ok)
		assert.Equal(t, models.ProjectAssigned, project.Status)
	}
}

func TestRunMoreStudentsThanProjects(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent, testStudentTwo},
		[]models.Project{availableProject("p1", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	created, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "stu", created[0].StudentID)

	// The second student stays unallocated
	_, ok := st.AllocationForStudent("stu2")
	assert.False(t, ok)
}

func TestRunMoreProjectsThanStudents(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{availableProject("p1", "sup"), availableProject("p2", "sup"), availableProject("p3", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	created, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, created, 1)

	p2, _ := st.ProjectByID("p2")
	p3, _ := st.ProjectByID("p3")
	assert.Equal(t, models.ProjectAvailable, p2.Status)
	assert.Equal(t, models.ProjectAvailable, p3.Status)
}

func TestRunIsIdempotentOnUnchangedState(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{availableProject("p1", "sup"), availableProject("p2", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	first, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.NotNil(t, second)

	assert.Len(t, st.Allocations(), 1)
}

func TestRunSkipsAllocatedStudentsAndProjects(t *testing.T) {
	existing := models.Allocation{
		ID: "a0", StudentID: "stu", ProjectID: "p1", SupervisorID: "sup", CreatedAt: time.Now(),
	}
	// p1 still reads Available here; the guard is the allocation itself
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent, testStudentTwo},
		[]models.Project{availableProject("p1", "sup"), availableProject("p2", "sup")},
		[]models.Allocation{existing},
		nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	created, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "stu2", created[0].StudentID)
	assert.Equal(t, "p2", created[0].ProjectID)
}

func TestRunIgnoresNonAvailableProjects(t *testing.T) {
	completed := availableProject("p1", "sup")
	completed.Status = models.ProjectCompleted
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{completed, availableProject("p2", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	created, err := svc.Run(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "p2", created[0].ProjectID)
}

func TestRunRequiresAdmin(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{availableProject("p1", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	for _, actor := range []models.User{testStudent, testSupervisor} {
		_, err := svc.Run(context.Background(), actor)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	}
	assert.Empty(t, st.Allocations())
}

func TestAssignStudent(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{availableProject("p1", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	allocation, err := svc.AssignStudent(context.Background(), &dto.AssignStudentRequest{
		StudentID: "stu",
		ProjectID: "p1",
	}, testAdmin)
	require.NoError(t, err)
	assert.Equal(t, "stu", allocation.StudentID)
	assert.Equal(t, "sup", allocation.SupervisorID)

	project, _ := st.ProjectByID("p1")
	assert.Equal(t, models.ProjectAssigned, project.Status)
}

func TestAssignStudentRejectsAllocatedStudent(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{availableProject("p1", "sup"), availableProject("p2", "sup")},
		[]models.Allocation{{ID: "a0", StudentID: "stu", ProjectID: "p1", SupervisorID: "sup"}},
		nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	_, err := svc.AssignStudent(context.Background(), &dto.AssignStudentRequest{
		StudentID: "stu",
		ProjectID: "p2",
	}, testAdmin)
	assert.ErrorIs(t, err, apperrors.ErrStudentAllocated)
}

func TestAssignStudentRejectsUnavailableProject(t *testing.T) {
	assigned := availableProject("p1", "sup")
	assigned.Status = models.ProjectAssigned
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor, testStudent},
		[]models.Project{assigned},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	_, err := svc.AssignStudent(context.Background(), &dto.AssignStudentRequest{
		StudentID: "stu",
		ProjectID: "p1",
	}, testAdmin)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotAvailable)
}

func TestAssignStudentRejectsNonStudentTarget(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testAdmin, testSupervisor},
		[]models.Project{availableProject("p1", "sup")},
		nil, nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	_, err := svc.AssignStudent(context.Background(), &dto.AssignStudentRequest{
		StudentID: "sup",
		ProjectID: "p1",
	}, testAdmin)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetStudentAllocation(t *testing.T) {
	st := newTestStore(t,
		[]models.User{testStudent},
		nil,
		[]models.Allocation{{ID: "a1", StudentID: "stu", ProjectID: "p1", SupervisorID: "sup"}},
		nil,
	)
	svc := NewAllocationService(st, zerolog.Nop())

	allocation, err := svc.GetStudentAllocation(context.Background(), "stu")
	require.NoError(t, err)
	assert.Equal(t, "a1", allocation.ID)

	_, err = svc.GetStudentAllocation(context.Background(), "other")
	assert.ErrorIs(t, err, apperrors.ErrAllocationNotFound)
}
