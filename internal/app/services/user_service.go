package services

import (
	"context"
	"time"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/store"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
)

// UserService defines the interface for user management operations
type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetStudents(ctx context.Context) ([]models.User, error)
	GetSupervisors(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, patch *dto.UpdateUserRequest, actor models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string, actor models.User) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	store *store.Store
}

// NewUserService creates a new user service instance
func NewUserService(st *store.Store) UserService {
	return &userServiceImpl{store: st}
}

// GetUsers returns all users with password hashes stripped.
func (s *userServiceImpl) GetUsers(ctx context.Context) ([]models.User, error) {
	return sanitizeUsers(s.store.Users()), nil
}

// GetUserByID returns one user with the password hash stripped.
func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.store.UserByID(id)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// GetStudents returns all users with role STUDENT.
func (s *userServiceImpl) GetStudents(ctx context.Context) ([]models.User, error) {
	return sanitizeUsers(s.store.UsersByRole(models.RoleStudent)), nil
}

// GetSupervisors returns all users with role SUPERVISOR.
func (s *userServiceImpl) GetSupervisors(ctx context.Context) ([]models.User, error) {
	return sanitizeUsers(s.store.UsersByRole(models.RoleSupervisor)), nil
}

// UpdateUser merges non-nil patch fields into the user record. The role is
// immutable and the patch cannot touch it. Only admins and the user themself
// may edit a profile.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id string, patch *dto.UpdateUserRequest, actor models.User) (*models.User, error) {
	if actor.RoleType != models.RoleAdmin && actor.ID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	user, ok := s.store.UserByID(id)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.MatricNumber != nil {
		user.MatricNumber = *patch.MatricNumber
	}
	if patch.OfficeLocation != nil {
		user.OfficeLocation = patch.OfficeLocation
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
	}
	if patch.Website != nil {
		user.Website = patch.Website
	}
	if patch.Bio != nil {
		user.Bio = patch.Bio
	}
	if patch.OfficeHours != nil {
		user.OfficeHours = patch.OfficeHours
	}
	if patch.ResearchInterests != nil {
		user.ResearchInterests = patch.ResearchInterests
	}
	user.UpdatedAt = time.Now()

	if err := s.store.SaveUser(user); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// DeleteUser removes a user and cascades to their allocations. Admin only;
// deleting one's own account is always blocked.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id string, actor models.User) error {
	if actor.RoleType != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	if id == actor.ID {
		return apperrors.ErrSelfDeletion
	}
	return s.store.DeleteUser(id)
}

func sanitizeUsers(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out
}
