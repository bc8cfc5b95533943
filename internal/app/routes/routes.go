package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/controllers"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models/dto"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	projectController *controllers.ProjectController,
	allocationController *controllers.AllocationController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// User routes
		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.GET("/students", userController.GetStudents)
			users.GET("/supervisors", userController.GetSupervisors)
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id", userController.UpdateUser)

			// Only admins may remove accounts
			usersAdminProtected := users.Group("")
			usersAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				usersAdminProtected.DELETE("/:id", userController.DeleteUser)
			}
		}

		// Project routes
		projects := authenticated.Group("/projects")
		{
			projects.GET("", projectController.GetProjects)
			projects.GET("/:id", projectController.GetProjectByID)

			// Supervisors propose projects; admins may also maintain them
			projectsSupervisorProtected := projects.Group("")
			projectsSupervisorProtected.Use(authMiddleware.RoleRequired(string(models.RoleSupervisor)))
			{
				projectsSupervisorProtected.POST("", projectController.CreateProject)
			}

			projectsMaintainerProtected := projects.Group("")
			projectsMaintainerProtected.Use(authMiddleware.RoleRequired(string(models.RoleSupervisor), string(models.RoleAdmin)))
			{
				projectsMaintainerProtected.PUT("/:id", projectController.UpdateProject)
				projectsMaintainerProtected.DELETE("/:id", projectController.DeleteProject)
			}
		}

		// Allocation routes
		allocations := authenticated.Group("/allocations")
		{
			allocations.GET("", allocationController.GetAllocations)

			// Allocation is an administrative action
			allocationsAdminProtected := allocations.Group("")
			allocationsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				allocationsAdminProtected.POST("", allocationController.AssignStudent)
				allocationsAdminProtected.POST("/run", allocationController.RunAllocation)
			}
		}

		// Progress report routes
		reports := authenticated.Group("/reports")
		{
			reports.GET("", reportController.GetReports)
			reports.GET("/pending", reportController.GetPendingReports)
			reports.GET("/:id", reportController.GetReportByID)

			reportsStudentProtected := reports.Group("")
			reportsStudentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				reportsStudentProtected.POST("", reportController.SubmitReport)
				reportsStudentProtected.PUT("/:id", reportController.UpdateReport)
			}

			reportsSupervisorProtected := reports.Group("")
			reportsSupervisorProtected.Use(authMiddleware.RoleRequired(string(models.RoleSupervisor)))
			{
				reportsSupervisorProtected.POST("/:id/feedback", reportController.GiveFeedback)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger and metrics routes are set up in bootstrap.go already
}
