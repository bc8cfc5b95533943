package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/services"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/middleware"
)

// ReportController handles progress report operations
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetReports lists progress reports
// @Summary Get progress reports
// @Description Without a filter returns all reports. The studentId query filters to one student's reports.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ProgressReport} "Reports retrieved"
// @Router /reports [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	if studentID := ctx.Query("studentId"); studentID != "" {
		reports, err := c.reportService.GetReportsForStudent(ctx.Request.Context(), studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      reports,
			Timestamp: time.Now(),
		})
		return
	}

	reports, err := c.reportService.GetReports(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// GetPendingReports lists reports awaiting the supervisor's review
// @Summary Get pending reports for the authenticated supervisor
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ProgressReport} "Pending reports retrieved"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /reports/pending [get]
func (c *ReportController) GetPendingReports(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	reports, err := c.reportService.GetPendingReports(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// GetReportByID retrieves one report
// @Summary Get report details
// @Description Visible to the owning student, the supervising supervisor and admins.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} dto.APIResponse{data=models.ProgressReport} "Report retrieved"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{id} [get]
func (c *ReportController) GetReportByID(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	report, err := c.reportService.GetReportByID(ctx.Request.Context(), ctx.Param("id"), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// SubmitReport handles report submission
// @Summary Submit a progress report
// @Description Students submit reports against their own allocation. The report starts in PENDING status.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitReportRequest true "Report content"
// @Success 201 {object} dto.APIResponse{data=models.ProgressReport} "Report submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /reports [post]
func (c *ReportController) SubmitReport(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	var req dto.SubmitReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.SubmitReport(ctx.Request.Context(), &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// UpdateReport applies a report patch
// @Summary Update a progress report
// @Description Only the owning student may edit. Editing resets the report to PENDING for re-review.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body dto.UpdateReportRequest true "Report patch"
// @Success 200 {object} dto.APIResponse{data=models.ProgressReport} "Report updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{id} [put]
func (c *ReportController) UpdateReport(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateReportRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.UpdateReport(ctx.Request.Context(), ctx.Param("id"), &patch, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// GiveFeedback records supervisor feedback on a report
// @Summary Give feedback on a progress report
// @Description The supervisor of the allocated project records feedback and optionally approves or rejects.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 200 {object} dto.APIResponse{data=models.ProgressReport} "Feedback recorded"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{id}/feedback [post]
func (c *ReportController) GiveFeedback(ctx *gin.Context) {
	actor, ok := actingUser(ctx)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.GiveFeedback(ctx.Request.Context(), ctx.Param("id"), &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
