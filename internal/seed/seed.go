package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/auth"
)

// Fixed identifiers for the built-in dataset. Kept stable so a collection
// restored from seed still references the others correctly.
const (
	AdminID      = "1"
	SupervisorID = "2"
	StudentID    = "3"
	ProjectOneID = "p1"
	ProjectTwoID = "p2"
)

// Users returns the default user dataset: one admin, one supervisor and one
// student. Passwords are hashed at call time; hashing failures are logged and
// leave the password empty, which makes the account unusable for login but
// keeps the dataset intact.
func Users(lgr zerolog.Logger) []models.User {
	now := time.Now()

	hash := func(plain string) string {
		h, err := auth.HashPassword(plain)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to hash seed password")
			return ""
		}
		return h
	}

	return []models.User{
		{
			ID:        AdminID,
			Name:      "Admin User",
			Email:     "admin@example.com",
			Password:  hash("admin123"),
			RoleType:  models.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:         SupervisorID,
			Name:       "Dr. Smith",
			Email:      "smith@example.com",
			Password:   hash("supervisor123"),
			RoleType:   models.RoleSupervisor,
			Department: "Computer Science",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:           StudentID,
			Name:         "John Doe",
			Email:        "john@example.com",
			Password:     hash("student123"),
			RoleType:     models.RoleStudent,
			Department:   "Computer Science",
			MatricNumber: "CS001",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Projects returns the default project dataset, both owned by the seed
// supervisor and open for allocation.
func Projects() []models.Project {
	now := time.Now()

	return []models.Project{
		{
			ID:           ProjectOneID,
			Title:        "Blockchain-based Voting System",
			Description:  "A secure and transparent voting system using blockchain technology.",
			Category:     "Distributed Systems",
			Status:       models.ProjectAvailable,
			SupervisorID: SupervisorID,
			MaxStudents:  1,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           ProjectTwoID,
			Title:        "AI-Powered Chatbot",
			Description:  "Building an intelligent chatbot using natural language processing.",
			Category:     "Machine Learning",
			Status:       models.ProjectAvailable,
			SupervisorID: SupervisorID,
			MaxStudents:  1,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Allocations returns the default allocation dataset. Empty: the seed state
// has every student unallocated.
func Allocations() []models.Allocation {
	return []models.Allocation{}
}

// Reports returns the default progress report dataset. Empty.
func Reports() []models.ProgressReport {
	return []models.ProgressReport{}
}
