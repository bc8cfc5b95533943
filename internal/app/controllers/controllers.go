// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/middleware"
)

// actingUser rebuilds the caller identity from the JWT claims set by the
// auth middleware. The role is fixed at creation so claims stay accurate for
// the token's lifetime.
func actingUser(c *gin.Context) (models.User, bool) {
	userID, okID := c.Get(middleware.ContextUserID)
	email, okEmail := c.Get(middleware.ContextEmail)
	role, okRole := c.Get(middleware.ContextRoleType)
	if !okID || !okEmail || !okRole {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return models.User{}, false
	}

	id, _ := userID.(string)
	mail, _ := email.(string)
	roleStr, _ := role.(string)
	if id == "" || roleStr == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return models.User{}, false
	}

	return models.User{
		ID:       id,
		Email:    mail,
		RoleType: models.RoleType(roleStr),
	}, true
}
