package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error response. All
// failures are scoped to the single call; nothing here is fatal to the
// process.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrProjectNotFound),
		errors.Is(err, apperrors.ErrAllocationNotFound),
		errors.Is(err, apperrors.ErrReportNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))
	case errors.Is(err, apperrors.ErrSelfDeletion):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Cannot delete own account"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"))
	case errors.Is(err, apperrors.ErrStudentAllocated),
		errors.Is(err, apperrors.ErrProjectNotAvailable),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
	default:
		respond(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
