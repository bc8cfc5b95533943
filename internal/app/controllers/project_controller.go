package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/services"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/middleware"
)

// ProjectController handles project operations
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// GetProjects retrieves all projects
// @Summary Get all projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects retrieved"
// @Router /projects [get]
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	// Optional supervisor filter
	if supervisorID := ctx.Query("supervisorId"); supervisorID != "" {
		projects, err := c.projectService.GetProjectsForSupervisor(ctx.Request.Context(), supervisorID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      projects,
			Timestamp: time.Now(),
		})
		return
	}

	projects, err := c.projectService.GetProjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projects,
		Timestamp: time.Now(),
	})
}

// GetProjectByID retrieves one project
// @Summary Get project details
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project retrieved"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	project, err := c.projectService.GetProjectByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// CreateProject handles project creation
// @Summary Create a new project
// @Description Supervisors propose projects. Status is forced to Available; id and timestamps are server-assigned.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project information"
// @Success 201 {object} dto.APIResponse{data=models.Project} "Project created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// UpdateProject applies a project patch
// @Summary Update a project
// @Description Merges patch fields and stamps updatedAt. Patched references are not re-validated.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Project patch"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), ctx.Param("id"), &patch, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// DeleteProject removes a project and cascades to its allocations
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} dto.APIResponse "Project deleted"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), ctx.Param("id"), actor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Project deleted"},
		Timestamp: time.Now(),
	})
}
