package gatepass

import (
	"context"
	"log/slog"
	"time"

	"github.com/campuskit/gatepass-management/internal/core/events"
	"github.com/campuskit/gatepass-management/internal/user"
)

// StudentDirectory resolves a caller-supplied student id to an account.
type StudentDirectory interface {
	GetByID(id int64) (*user.User, error)
}

// EventPublisher pushes lifecycle events onto the in-process bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Repository defines the data access methods for gate passes
type Repository interface {
	Create(p *GatePass) error
	CountByPassIDPrefix(prefix string) (int64, error)
	GetByPassID(passID string) (*GatePass, error)
	ListByStudent(studentID int64) ([]*GatePass, error)
	ListByDepartment(department string) ([]*GatePass, error)
	// UpdateDecision overwrites the decision fields of the pass identified by
	// passID and returns the updated record. It does not inspect the current
	// status: repeating a decision re-sets the same fields.
	UpdateDecision(passID, status, approvedBy, remarks string, decidedAt time.Time) (*GatePass, error)
	// FindApprovedByQuery returns the most recently submitted approved pass
	// whose passId or rollNumber equals query exactly.
	FindApprovedByQuery(query string) (*GatePass, error)
}

type Service struct {
	repo     Repository
	students StudentDirectory
	bus      EventPublisher
	logger   *slog.Logger
}

func NewService(repo Repository, students StudentDirectory, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		students: students,
		bus:      bus,
		logger:   logger,
	}
}

// CreateGatePass submits a new exit request on behalf of a student. The pass
// identifier is derived from a count of same-day passes; two concurrent
// submissions can compute the same sequence, in which case the unique index
// fails the second insert.
func (s *Service) CreateGatePass(dto CreateGatePassDTO) (*GatePass, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("gate pass validation failed", "error", err, "student_id", dto.StudentID)
		return nil, err
	}

	student, err := s.students.GetByID(dto.StudentID)
	if err != nil || !student.IsStudent() {
		s.logger.Warn("gate pass rejected: student not found", "student_id", dto.StudentID)
		return nil, ErrStudentNotFound
	}

	now := time.Now()
	prefix := PassIDPrefix(now)
	count, err := s.repo.CountByPassIDPrefix(prefix)
	if err != nil {
		s.logger.Error("failed to count same-day passes", "error", err, "prefix", prefix)
		return nil, err
	}

	pass := &GatePass{
		PassID:        FormatPassID(prefix, count+1),
		StudentID:     student.ID,
		StudentName:   student.Name,
		RollNumber:    student.RollNumber,
		Department:    student.Department,
		Reason:        dto.Reason,
		Destination:   dto.Destination,
		DateOfExit:    dto.DateOfExit,
		ReturnTime:    dto.ReturnTime,
		Status:        StatusPending,
		SubmittedDate: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(pass); err != nil {
		s.logger.Error("failed to create gate pass", "error", err, "pass_id", pass.PassID)
		return nil, err
	}

	s.publish(events.NewGatePassCreatedEvent(pass.PassID, pass.StudentID, pass.RollNumber, pass.Department))

	s.logger.Info("gate pass created",
		"pass_id", pass.PassID,
		"student_id", pass.StudentID,
		"department", pass.Department)

	return pass, nil
}

func (s *Service) ListByStudent(studentID int64) ([]*GatePass, error) {
	passes, err := s.repo.ListByStudent(studentID)
	if err != nil {
		s.logger.Error("failed to list passes by student", "error", err, "student_id", studentID)
		return nil, err
	}
	return passes, nil
}

func (s *Service) ListByDepartment(department string) ([]*GatePass, error) {
	passes, err := s.repo.ListByDepartment(department)
	if err != nil {
		s.logger.Error("failed to list passes by department", "error", err, "department", department)
		return nil, err
	}
	return passes, nil
}

func (s *Service) GetByPassID(passID string) (*GatePass, error) {
	return s.repo.GetByPassID(passID)
}

// Approve marks the pass approved. Remarks default to "Approved" when
// omitted. The update is unconditional: a pass already decided is simply
// overwritten, matching the API contract.
func (s *Service) Approve(passID, approvedBy, remarks string) (*GatePass, error) {
	if remarks == "" {
		remarks = "Approved"
	}

	pass, err := s.repo.UpdateDecision(passID, StatusApproved, approvedBy, remarks, time.Now())
	if err != nil {
		s.logger.Error("failed to approve gate pass", "error", err, "pass_id", passID)
		return nil, err
	}

	s.publish(events.NewGatePassDecidedEvent(passID, StatusApproved, approvedBy, remarks))

	s.logger.Info("gate pass approved", "pass_id", passID, "approved_by", approvedBy)
	return pass, nil
}

// Reject marks the pass rejected with the supplied remarks.
func (s *Service) Reject(passID, approvedBy, remarks string) (*GatePass, error) {
	pass, err := s.repo.UpdateDecision(passID, StatusRejected, approvedBy, remarks, time.Now())
	if err != nil {
		s.logger.Error("failed to reject gate pass", "error", err, "pass_id", passID)
		return nil, err
	}

	s.publish(events.NewGatePassDecidedEvent(passID, StatusRejected, approvedBy, remarks))

	s.logger.Info("gate pass rejected", "pass_id", passID, "rejected_by", approvedBy)
	return pass, nil
}

// FindApproved backs the security search path: exact match on passId or
// rollNumber, approved passes only.
func (s *Service) FindApproved(query string) (*GatePass, error) {
	return s.repo.FindApprovedByQuery(query)
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "error", err, "event_type", event.EventType())
	}
}
