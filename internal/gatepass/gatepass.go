package gatepass

import (
	"fmt"
	"time"

	errors "github.com/campuskit/gatepass-management/internal"
	gatepassDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/gatepass"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// GatePass is one exit request. Student display fields are copied from the
// owning account at creation time and never refreshed afterwards.
type GatePass struct {
	ID            int64      `json:"id"`
	PassID        string     `json:"passId"`
	StudentID     int64      `json:"studentId"`
	StudentName   string     `json:"studentName"`
	RollNumber    string     `json:"rollNumber"`
	Department    string     `json:"department"`
	Reason        string     `json:"reason"`
	Destination   string     `json:"destination"`
	DateOfExit    time.Time  `json:"dateOfExit"`
	ReturnTime    string     `json:"returnTime"`
	Status        string     `json:"status"`
	HodRemarks    string     `json:"hodRemarks,omitempty"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
	ApprovedDate  *time.Time `json:"approvedDate,omitempty"`
	SubmittedDate time.Time  `json:"submittedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (p *GatePass) IsPending() bool {
	return p.Status == StatusPending
}

// PassIDPrefix returns the date-scoped prefix shared by all passes created
// on the given day, e.g. GP-20250601.
func PassIDPrefix(t time.Time) string {
	return fmt.Sprintf("GP-%s", t.Format("20060102"))
}

// FormatPassID builds the display identifier from the day prefix and a
// 1-based sequence number, e.g. GP-20250601-0001.
func FormatPassID(prefix string, sequence int64) string {
	return fmt.Sprintf("%s-%04d", prefix, sequence)
}

var (
	ErrNotFound        = errors.NewNotFoundError("Gate pass not found", errors.ErrCodeGatePassNotFound)
	ErrStudentNotFound = errors.NewNotFoundError("Student not found", errors.ErrCodeStudentNotFound)
	ErrDuplicatePassID = errors.NewConflictError("Gate pass identifier already exists", errors.ErrCodeDuplicatePassID)
)

func ToDataModel(p *GatePass) *gatepassDatamodel.GatePass {
	return &gatepassDatamodel.GatePass{
		ID:            p.ID,
		PassID:        p.PassID,
		StudentID:     p.StudentID,
		StudentName:   p.StudentName,
		RollNumber:    p.RollNumber,
		Department:    p.Department,
		Reason:        p.Reason,
		Destination:   p.Destination,
		DateOfExit:    p.DateOfExit,
		ReturnTime:    p.ReturnTime,
		Status:        p.Status,
		HodRemarks:    p.HodRemarks,
		ApprovedBy:    p.ApprovedBy,
		ApprovedDate:  p.ApprovedDate,
		SubmittedDate: p.SubmittedDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromDataModel(p *gatepassDatamodel.GatePass) *GatePass {
	return &GatePass{
		ID:            p.ID,
		PassID:        p.PassID,
		StudentID:     p.StudentID,
		StudentName:   p.StudentName,
		RollNumber:    p.RollNumber,
		Department:    p.Department,
		Reason:        p.Reason,
		Destination:   p.Destination,
		DateOfExit:    p.DateOfExit,
		ReturnTime:    p.ReturnTime,
		Status:        p.Status,
		HodRemarks:    p.HodRemarks,
		ApprovedBy:    p.ApprovedBy,
		ApprovedDate:  p.ApprovedDate,
		SubmittedDate: p.SubmittedDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromDataModelSlice(passes []*gatepassDatamodel.GatePass) []*GatePass {
	result := make([]*GatePass, len(passes))
	for i, p := range passes {
		result[i] = FromDataModel(p)
	}
	return result
}
