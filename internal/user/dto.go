package user

import (
	errors "github.com/campuskit/gatepass-management/internal"
	"github.com/campuskit/gatepass-management/internal/core/common/validation"
)

// RegisterDTO carries registration input. Role-specific fields are optional
// at the transport layer; the service keeps only the ones the role uses.
type RegisterDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber,omitempty"`
	Department string `json:"department,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

func (dto RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required()
	v.Field("email", dto.Email).Required()
	v.Field("password", dto.Password).Required().MinLength(6)
	v.Field("role", dto.Role).Required().OneOf(RoleStudent, RoleHOD, RoleSecurity)
	return v.Validate()
}

// LoginDTO carries login input. Email doubles as the credential field: for
// students it may hold a roll number and for HODs an employee id; security
// staff always authenticate by employee id.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (dto LoginDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required()
	v.Field("password", dto.Password).Required()
	v.Field("role", dto.Role).Required().OneOf(RoleStudent, RoleHOD, RoleSecurity)
	return v.Validate()
}
