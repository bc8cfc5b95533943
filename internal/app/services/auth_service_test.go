package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	st := newTestStore(t, []models.User{
		{ID: "u1", Name: "Jane", Email: "jane@test", Password: hashed, RoleType: models.RoleStudent},
	}, nil, nil, nil)
	svc := NewAuthService(st, zerolog.Nop())

	user, err := svc.Login(context.Background(), "jane@test", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	// The password hash never leaves the service
	assert.Empty(t, user.Password)
}

func TestLoginBadCredentials(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	st := newTestStore(t, []models.User{
		{ID: "u1", Email: "jane@test", Password: hashed, RoleType: models.RoleStudent},
	}, nil, nil, nil)
	svc := NewAuthService(st, zerolog.Nop())
	ctx := context.Background()

	// Wrong password and unknown email fail identically
	_, err = svc.Login(ctx, "jane@test", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@test", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterStudent(t *testing.T) {
	st := newTestStore(t, nil, nil, nil, nil)
	svc := NewAuthService(st, zerolog.Nop())

	user, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name:         "New Student",
		Email:        "new@test",
		Password:     "password1",
		Department:   "Computer Science",
		MatricNumber: "CS042",
	})
	require.NoError(t, err)

	// Role is forced regardless of what the caller wanted
	assert.Equal(t, models.RoleStudent, user.RoleType)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password)

	// The stored record carries the hash, not the plaintext
	stored, ok := st.UserByEmail("new@test")
	require.True(t, ok)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "password1", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "password1"))
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	st := newTestStore(t, []models.User{
		{ID: "u1", Email: "taken@test", RoleType: models.RoleStudent},
	}, nil, nil, nil)
	svc := NewAuthService(st, zerolog.Nop())

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Copycat",
		Email:    "taken@test",
		Password: "password1",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Len(t, st.Users(), 1)
}

func TestRegisteredStudentCanLogin(t *testing.T) {
	st := newTestStore(t, nil, nil, nil, nil)
	svc := NewAuthService(st, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, &dto.RegisterStudentRequest{
		Name:     "Round Trip",
		Email:    "trip@test",
		Password: "password1",
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "trip@test", "password1")
	require.NoError(t, err)
	assert.Equal(t, "Round Trip", user.Name)
}
