package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/services"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/middleware"
)

// AllocationController handles allocation operations
type AllocationController struct {
	allocationService services.AllocationService
}

// NewAllocationController creates a new AllocationController
func NewAllocationController(allocationService services.AllocationService) *AllocationController {
	return &AllocationController{
		allocationService: allocationService,
	}
}

// GetAllocations lists allocations
// @Summary Get allocations
// @Description Without a filter returns all allocations. The studentId query returns that student's allocation, if any.
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Allocation} "Allocations retrieved"
// @Router /allocations [get]
func (c *AllocationController) GetAllocations(ctx *gin.Context) {
	if studentID := ctx.Query("studentId"); studentID != "" {
		allocation, err := c.allocationService.GetStudentAllocation(ctx.Request.Context(), studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      allocation,
			Timestamp: time.Now(),
		})
		return
	}

	allocations, err := c.allocationService.GetAllocations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      allocations,
		Timestamp: time.Now(),
	})
}

// RunAllocation executes the automatic allocation pass
// @Summary Run automatic allocation
// @Description Pairs unassigned students with available projects in listing order and marks the projects Assigned. Admin only.
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AllocationRunResponse} "Allocation run completed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /allocations/run [post]
func (c *AllocationController) RunAllocation(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	created, err := c.allocationService.Run(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AllocationRunResponse{
			Created:     len(created),
			Allocations: created,
		},
		Timestamp: time.Now(),
	})
}

// AssignStudent manually allocates one student to one project
// @Summary Assign a student to a project
// @Description Creates a single allocation and marks the project Assigned. Admin only.
// @Tags allocations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignStudentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.Allocation} "Allocation created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Student already allocated or project unavailable"
// @Router /allocations [post]
func (c *AllocationController) AssignStudent(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	var req dto.AssignStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	allocation, err := c.allocationService.AssignStudent(ctx.Request.Context(), &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      allocation,
		Timestamp: time.Now(),
	})
}
