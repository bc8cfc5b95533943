package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleSupervisor RoleType = "SUPERVISOR"
	RoleAdmin      RoleType = "ADMIN"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectAvailable ProjectStatus = "Available"
	ProjectAssigned  ProjectStatus = "Assigned"
	ProjectCompleted ProjectStatus = "Completed"
)

// ReportStatus represents the review state of a progress report
type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportApproved ReportStatus = "APPROVED"
	ReportRejected ReportStatus = "REJECTED"
)
