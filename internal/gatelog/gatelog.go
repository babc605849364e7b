package gatelog

import (
	"fmt"
	"time"

	errors "github.com/campuskit/gatepass-management/internal"
	gatelogDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/gatelog"
)

const (
	StatusAwaitingEntry = "awaiting-entry"
	StatusInTransit     = "in-transit"
	StatusCompleted     = "completed"
)

// EntryExitLog records a student's physical movement for one approved gate
// pass. Status is derived from which timestamps have been recorded; the
// store itself does not enforce entry-before-exit ordering.
type EntryExitLog struct {
	ID          int64      `json:"id"`
	LogID       string     `json:"logId"`
	GatePassID  int64      `json:"gatePassId"`
	StudentID   int64      `json:"studentId"`
	StudentName string     `json:"studentName"`
	RollNumber  string     `json:"rollNumber"`
	Department  string     `json:"department"`
	EntryTime   *time.Time `json:"entryTime"`
	ExitTime    *time.Time `json:"exitTime"`
	MarkedBy    string     `json:"markedBy,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DeriveStatus maps recorded timestamps onto the display status.
func DeriveStatus(entryTime, exitTime *time.Time) string {
	switch {
	case exitTime != nil:
		return StatusCompleted
	case entryTime != nil:
		return StatusInTransit
	default:
		return StatusAwaitingEntry
	}
}

// FormatLogID builds the display identifier from a 1-based global sequence,
// e.g. LOG0001.
func FormatLogID(sequence int64) string {
	return fmt.Sprintf("LOG%04d", sequence)
}

var ErrLogNotFound = errors.NewNotFoundError("Entry/exit log not found", errors.ErrCodeLogNotFound)

func ToDataModel(l *EntryExitLog) *gatelogDatamodel.EntryExitLog {
	return &gatelogDatamodel.EntryExitLog{
		ID:          l.ID,
		LogID:       l.LogID,
		GatePassID:  l.GatePassID,
		StudentID:   l.StudentID,
		StudentName: l.StudentName,
		RollNumber:  l.RollNumber,
		Department:  l.Department,
		EntryTime:   l.EntryTime,
		ExitTime:    l.ExitTime,
		MarkedBy:    l.MarkedBy,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromDataModel(l *gatelogDatamodel.EntryExitLog) *EntryExitLog {
	return &EntryExitLog{
		ID:          l.ID,
		LogID:       l.LogID,
		GatePassID:  l.GatePassID,
		StudentID:   l.StudentID,
		StudentName: l.StudentName,
		RollNumber:  l.RollNumber,
		Department:  l.Department,
		EntryTime:   l.EntryTime,
		ExitTime:    l.ExitTime,
		MarkedBy:    l.MarkedBy,
		Status:      DeriveStatus(l.EntryTime, l.ExitTime),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromDataModelSlice(logs []*gatelogDatamodel.EntryExitLog) []*EntryExitLog {
	result := make([]*EntryExitLog, len(logs))
	for i, l := range logs {
		result[i] = FromDataModel(l)
	}
	return result
}
