package gatepass

import (
	"time"

	errors "github.com/campuskit/gatepass-management/internal"
	"github.com/campuskit/gatepass-management/internal/core/common/validation"
)

// CreateGatePassDTO is the request payload for submitting an exit request.
type CreateGatePassDTO struct {
	StudentID   int64     `json:"studentId"`
	Reason      string    `json:"reason"`
	Destination string    `json:"destination"`
	DateOfExit  time.Time `json:"dateOfExit"`
	ReturnTime  string    `json:"returnTime"`
}

func (dto CreateGatePassDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("studentId", dto.StudentID).Required()
	v.Field("reason", dto.Reason).Required().MaxLength(500)
	v.Field("destination", dto.Destination).Required().MaxLength(200)
	v.Field("dateOfExit", dto.DateOfExit).Required()
	v.Field("returnTime", dto.ReturnTime).Required()
	return v.Validate()
}

// DecisionDTO is the request payload for HOD approve/reject actions. Remarks
// are required for rejection by the client flow only; the server stays
// permissive to match the established API contract.
type DecisionDTO struct {
	ApprovedBy string `json:"approvedBy"`
	HodRemarks string `json:"hodRemarks"`
}
