package dto

// UpdateUserRequest represents a profile-edit patch. Only non-nil fields are
// applied; the role can never be patched.
type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Department   *string `json:"department,omitempty"`
	MatricNumber *string `json:"matricNumber,omitempty"`

	// Supervisor profile fields
	OfficeLocation    *string `json:"officeLocation,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Website           *string `json:"website,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	OfficeHours       *string `json:"officeHours,omitempty"`
	ResearchInterests *string `json:"researchInterests,omitempty"`
}
