package user

import (
	"time"

	errors "github.com/campuskit/gatepass-management/internal"
	userDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/user"
)

const (
	RoleStudent  = "student"
	RoleHOD      = "hod"
	RoleSecurity = "security"
)

// User is a campus account. RollNumber is set for students, EmployeeID for
// HOD and security staff, Department for students and HODs.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RollNumber   string    `json:"rollNumber,omitempty"`
	Department   string    `json:"department,omitempty"`
	EmployeeID   string    `json:"employeeId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// PublicUser is the registration response shape: identity only, no
// role-specific fields.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

var (
	ErrEmailTaken         = errors.NewValidationError("Email already registered", errors.ErrCodeEmailTaken)
	ErrInvalidCredentials = errors.NewUnauthorizedError("Invalid credentials", errors.ErrCodeInvalidCredentials)
	ErrNotFound           = errors.NewNotFoundError("User not found", errors.ErrCodeStudentNotFound)
)

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		RollNumber:   optional(u.RollNumber),
		Department:   optional(u.Department),
		EmployeeID:   optional(u.EmployeeID),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		RollNumber:   deref(u.RollNumber),
		Department:   deref(u.Department),
		EmployeeID:   deref(u.EmployeeID),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// optional maps the empty string to nil so absent roll numbers and employee
// ids stay out of the sparse unique indexes.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
