package gatelog

import (
	errors "github.com/campuskit/gatepass-management/internal"
	"github.com/campuskit/gatepass-management/internal/core/common/validation"
)

// CreateLogDTO is the request payload for the find-or-create log endpoint.
type CreateLogDTO struct {
	PassID string `json:"passId"`
}

func (dto CreateLogDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("passId", dto.PassID).Required()
	return v.Validate()
}

// MarkEntryDTO is the request payload for recording a campus exit at the gate.
type MarkEntryDTO struct {
	MarkedBy string `json:"markedBy"`
}
