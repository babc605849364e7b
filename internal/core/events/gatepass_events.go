package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeGatePassCreated  = "gatepass.created"
	EventTypeGatePassApproved = "gatepass.approved"
	EventTypeGatePassRejected = "gatepass.rejected"
	EventTypeEntryMarked      = "gatelog.entry_marked"
	EventTypeExitMarked       = "gatelog.exit_marked"
)

type GatePassCreatedEvent struct {
	BaseEvent
	PassID     string `json:"pass_id"`
	StudentID  int64  `json:"student_id"`
	RollNumber string `json:"roll_number"`
	Department string `json:"department"`
}

func NewGatePassCreatedEvent(passID string, studentID int64, rollNumber, department string) *GatePassCreatedEvent {
	return &GatePassCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeGatePassCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"pass_id":     passID,
				"student_id":  studentID,
				"roll_number": rollNumber,
				"department":  department,
			},
		},
		PassID:     passID,
		StudentID:  studentID,
		RollNumber: rollNumber,
		Department: department,
	}
}

type GatePassDecidedEvent struct {
	BaseEvent
	PassID    string `json:"pass_id"`
	Status    string `json:"status"`
	DecidedBy string `json:"decided_by"`
	Remarks   string `json:"remarks"`
}

func NewGatePassDecidedEvent(passID, status, decidedBy, remarks string) *GatePassDecidedEvent {
	eventType := EventTypeGatePassApproved
	if status == "rejected" {
		eventType = EventTypeGatePassRejected
	}
	return &GatePassDecidedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"pass_id":    passID,
				"status":     status,
				"decided_by": decidedBy,
				"remarks":    remarks,
			},
		},
		PassID:    passID,
		Status:    status,
		DecidedBy: decidedBy,
		Remarks:   remarks,
	}
}

type GateMovementEvent struct {
	BaseEvent
	LogID    string `json:"log_id"`
	PassID   string `json:"pass_id"`
	MarkedBy string `json:"marked_by"`
}

func NewGateMovementEvent(eventType, logID, passID, markedBy string) *GateMovementEvent {
	return &GateMovementEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"log_id":    logID,
				"pass_id":   passID,
				"marked_by": markedBy,
			},
		},
		LogID:    logID,
		PassID:   passID,
		MarkedBy: markedBy,
	}
}
