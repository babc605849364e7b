package gatelog

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/campuskit/gatepass-management/internal"
	"github.com/campuskit/gatepass-management/internal/core/events"
	"github.com/campuskit/gatepass-management/internal/gatepass"
)

// DefaultListLimit caps the recent-logs listing.
const DefaultListLimit = 100

// PassDirectory is the gate-pass lookup surface security actions go through.
type PassDirectory interface {
	GetByPassID(passID string) (*gatepass.GatePass, error)
	FindApproved(query string) (*gatepass.GatePass, error)
}

// EventPublisher pushes gate movement events onto the in-process bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Repository defines the data access methods for entry/exit logs
type Repository interface {
	Count() (int64, error)
	Create(l *EntryExitLog) error
	GetByGatePassID(gatePassID int64) (*EntryExitLog, error)
	// SetEntry records the entry timestamp and marking officer on the log
	// belonging to gatePassID. Returns ErrLogNotFound when no log exists.
	SetEntry(gatePassID int64, at time.Time, markedBy string) (*EntryExitLog, error)
	// SetExit records the exit timestamp. No entry-before-exit precondition
	// is checked.
	SetExit(gatePassID int64, at time.Time) (*EntryExitLog, error)
	ListRecent(limit int) ([]*EntryExitLog, error)
}

type Service struct {
	repo   Repository
	passes PassDirectory
	bus    EventPublisher
	logger *slog.Logger
}

func NewService(repo Repository, passes PassDirectory, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		passes: passes,
		bus:    bus,
		logger: logger,
	}
}

// Search resolves a security desk query to the most recent approved pass
// matching by passId or rollNumber. A missing match is not an error: the
// result is simply nil.
func (s *Service) Search(query string) (*gatepass.GatePass, error) {
	pass, err := s.passes.FindApproved(query)
	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok && appErr.Type == errors.ErrorTypeNotFound {
			return nil, nil
		}
		s.logger.Error("search failed", "error", err, "query", query)
		return nil, err
	}
	return pass, nil
}

// FindOrCreateLog returns the log for the given pass, creating it on first
// lookup. The log identifier is a global count plus one, so concurrent first
// lookups of different passes can race onto the same sequence; the unique
// index fails the loser.
func (s *Service) FindOrCreateLog(dto CreateLogDTO) (*EntryExitLog, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	pass, err := s.passes.GetByPassID(dto.PassID)
	if err != nil {
		s.logger.Warn("log lookup rejected: gate pass not found", "pass_id", dto.PassID)
		return nil, err
	}

	log, err := s.repo.GetByGatePassID(pass.ID)
	if err == nil {
		return log, nil
	}
	if err != ErrLogNotFound {
		s.logger.Error("failed to look up existing log", "error", err, "pass_id", dto.PassID)
		return nil, err
	}

	count, err := s.repo.Count()
	if err != nil {
		s.logger.Error("failed to count logs", "error", err)
		return nil, err
	}

	now := time.Now()
	log = &EntryExitLog{
		LogID:       FormatLogID(count + 1),
		GatePassID:  pass.ID,
		StudentID:   pass.StudentID,
		StudentName: pass.StudentName,
		RollNumber:  pass.RollNumber,
		Department:  pass.Department,
		Status:      StatusAwaitingEntry,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(log); err != nil {
		s.logger.Error("failed to create entry/exit log", "error", err, "pass_id", dto.PassID)
		return nil, err
	}

	s.logger.Info("entry/exit log created", "log_id", log.LogID, "pass_id", dto.PassID)
	return log, nil
}

// MarkEntry records the student leaving campus. The pass status is not
// re-checked here; only approved passes reach this flow through the intended
// client path.
func (s *Service) MarkEntry(passID, markedBy string) (*EntryExitLog, error) {
	pass, err := s.passes.GetByPassID(passID)
	if err != nil {
		return nil, err
	}

	log, err := s.repo.SetEntry(pass.ID, time.Now(), markedBy)
	if err != nil {
		s.logger.Error("failed to mark entry", "error", err, "pass_id", passID)
		return nil, err
	}

	s.publish(events.NewGateMovementEvent(events.EventTypeEntryMarked, log.LogID, passID, markedBy))

	s.logger.Info("entry marked", "log_id", log.LogID, "pass_id", passID, "marked_by", markedBy)
	return log, nil
}

// MarkExit records the student returning to campus.
func (s *Service) MarkExit(passID string) (*EntryExitLog, error) {
	pass, err := s.passes.GetByPassID(passID)
	if err != nil {
		return nil, err
	}

	log, err := s.repo.SetExit(pass.ID, time.Now())
	if err != nil {
		s.logger.Error("failed to mark exit", "error", err, "pass_id", passID)
		return nil, err
	}

	s.publish(events.NewGateMovementEvent(events.EventTypeExitMarked, log.LogID, passID, log.MarkedBy))

	s.logger.Info("exit marked", "log_id", log.LogID, "pass_id", passID)
	return log, nil
}

// ListRecent returns the newest logs, capped at DefaultListLimit.
func (s *Service) ListRecent() ([]*EntryExitLog, error) {
	logs, err := s.repo.ListRecent(DefaultListLimit)
	if err != nil {
		s.logger.Error("failed to list logs", "error", err)
		return nil, err
	}
	return logs, nil
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "error", err, "event_type", event.EventType())
	}
}
