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
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(st *store.Store, lgr zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:  st,
		logger: lgr,
	}
}

// Login checks credentials and returns the matching user with the password
// hash stripped. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		s.logger.Warn().Str("email", email).Msg("Login failed: password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// RegisterStudent creates a new user with the role forced to STUDENT. The
// email must not already belong to any user (exact, case-sensitive match).
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		RoleType:     models.RoleStudent,
		Department:   req.Department,
		MatricNumber: req.MatricNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("email", user.Email).Msg("Student registered")
	sanitized := user.Sanitized()
	return &sanitized, nil
}
