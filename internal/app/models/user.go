package models

import (
	"time"
)

// User defines an account in the portal. The role is fixed at creation and
// never changes afterwards.
type User struct {
	ID           string    `json:"id" example:"b4f9c7d2-1e2a-4c3b-9f1e-0a6d8e5b2c41"` // Unique identifier for the user
	Name         string    `json:"name" example:"John Doe"`                           // Full name
	Email        string    `json:"email" example:"john@example.com"`                  // Email address, unique across all users
	Password     string    `json:"password,omitempty" swaggerignore:"true"`           // Bcrypt password hash; must survive snapshot round-trips, stripped via Sanitized before API output
	RoleType     RoleType  `json:"roleType" example:"STUDENT"`                        // STUDENT, SUPERVISOR or ADMIN
	Department   string    `json:"department,omitempty" example:"Computer Science"`   // Department name
	MatricNumber string    `json:"matricNumber,omitempty" example:"CS001"`            // Matriculation number (students only)
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	UpdatedAt    time.Time `json:"updatedAt" example:"2024-01-02T15:30:00Z"`

	// Supervisor profile fields (nullable, supervisors only)
	OfficeLocation    *string `json:"officeLocation,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Website           *string `json:"website,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	OfficeHours       *string `json:"officeHours,omitempty"`
	ResearchInterests *string `json:"researchInterests,omitempty"`
}

// Sanitized returns a copy of the user with the password hash removed.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
