package gatelog_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/campuskit/gatepass-management/internal/gatelog"
	"github.com/campuskit/gatepass-management/internal/gatepass"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGateLogService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "GateLog Service Suite")
}

// MockRepository implements gatelog.Repository for testing
type MockRepository struct {
	logs      map[int64]*gatelog.EntryExitLog
	nextID    int64
	lookupErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{logs: make(map[int64]*gatelog.EntryExitLog), nextID: 1}
}

func (m *MockRepository) SetLookupError(err error) {
	m.lookupErr = err
}

func (m *MockRepository) Count() (int64, error) {
	return int64(len(m.logs)), nil
}

func (m *MockRepository) Create(l *gatelog.EntryExitLog) error {
	l.ID = m.nextID
	m.nextID++
	m.logs[l.GatePassID] = l
	return nil
}

func (m *MockRepository) GetByGatePassID(gatePassID int64) (*gatelog.EntryExitLog, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	l, ok := m.logs[gatePassID]
	if !ok {
		return nil, gatelog.ErrLogNotFound
	}
	return l, nil
}

func (m *MockRepository) SetEntry(gatePassID int64, at time.Time, markedBy string) (*gatelog.EntryExitLog, error) {
	l, ok := m.logs[gatePassID]
	if !ok {
		return nil, gatelog.ErrLogNotFound
	}
	l.EntryTime = &at
	l.MarkedBy = markedBy
	l.Status = gatelog.DeriveStatus(l.EntryTime, l.ExitTime)
	return l, nil
}

func (m *MockRepository) SetExit(gatePassID int64, at time.Time) (*gatelog.EntryExitLog, error) {
	l, ok := m.logs[gatePassID]
	if !ok {
		return nil, gatelog.ErrLogNotFound
	}
	l.ExitTime = &at
	l.Status = gatelog.DeriveStatus(l.EntryTime, l.ExitTime)
	return l, nil
}

func (m *MockRepository) ListRecent(limit int) ([]*gatelog.EntryExitLog, error) {
	var result []*gatelog.EntryExitLog
	for _, l := range m.logs {
		result = append(result, l)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockPassDirectory implements gatelog.PassDirectory for testing
type MockPassDirectory struct {
	passes map[string]*gatepass.GatePass
}

func NewMockPassDirectory() *MockPassDirectory {
	return &MockPassDirectory{passes: make(map[string]*gatepass.GatePass)}
}

func (m *MockPassDirectory) AddPass(p *gatepass.GatePass) {
	m.passes[p.PassID] = p
}

func (m *MockPassDirectory) GetByPassID(passID string) (*gatepass.GatePass, error) {
	p, ok := m.passes[passID]
	if !ok {
		return nil, gatepass.ErrNotFound
	}
	return p, nil
}

func (m *MockPassDirectory) FindApproved(query string) (*gatepass.GatePass, error) {
	for _, p := range m.passes {
		if p.Status != gatepass.StatusApproved {
			continue
		}
		if p.PassID == query || p.RollNumber == query {
			return p, nil
		}
	}
	return nil, gatepass.ErrNotFound
}

var _ = Describe("GateLog Service", func() {
	var (
		mockRepo *MockRepository
		passes   *MockPassDirectory
		service  *gatelog.Service
		logger   *slog.Logger
	)

	approvedPass := func(id int64, passID, rollNumber string) *gatepass.GatePass {
		return &gatepass.GatePass{
			ID:          id,
			PassID:      passID,
			StudentID:   1,
			StudentName: "Alice Kumar",
			RollNumber:  rollNumber,
			Department:  "CSE",
			Status:      gatepass.StatusApproved,
		}
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		passes = NewMockPassDirectory()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = gatelog.NewService(mockRepo, passes, nil, logger)
	})

	Describe("Search", func() {
		It("should return nil without error when nothing matches", func() {
			result, err := service.Search("R999")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeNil())
		})

		It("should return the approved pass for a matching query", func() {
			passes.AddPass(approvedPass(1, "GP-20260830-0001", "R100"))

			result, err := service.Search("R100")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).NotTo(BeNil())
			Expect(result.PassID).To(Equal("GP-20260830-0001"))
		})
	})

	Describe("FindOrCreateLog", func() {
		BeforeEach(func() {
			passes.AddPass(approvedPass(1, "GP-20260830-0001", "R100"))
		})

		It("should create a log on first lookup", func() {
			log, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0001"})
			Expect(err).NotTo(HaveOccurred())
			Expect(log.LogID).To(Equal("LOG0001"))
			Expect(log.GatePassID).To(Equal(int64(1)))
			Expect(log.Status).To(Equal(gatelog.StatusAwaitingEntry))
			Expect(log.StudentName).To(Equal("Alice Kumar"))
		})

		It("should return the existing log on repeat lookups", func() {
			first, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0001"})
			Expect(err).NotTo(HaveOccurred())

			second, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0001"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.LogID).To(Equal(first.LogID))

			count, err := mockRepo.Count()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("should advance the global sequence across passes", func() {
			passes.AddPass(approvedPass(2, "GP-20260830-0002", "R101"))

			_, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0001"})
			Expect(err).NotTo(HaveOccurred())

			second, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0002"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.LogID).To(Equal("LOG0002"))
		})

		It("should propagate a store failure instead of creating a duplicate", func() {
			storeErr := errors.New("connection reset")
			mockRepo.SetLookupError(storeErr)

			_, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0001"})
			Expect(err).To(Equal(storeErr))

			mockRepo.SetLookupError(nil)
			count, err := mockRepo.Count()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should reject an unknown pass", func() {
			_, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20200101-9999"})
			Expect(err).To(Equal(gatepass.ErrNotFound))
		})

		It("should reject an empty pass id", func() {
			_, err := service.FindOrCreateLog(gatelog.CreateLogDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("MarkEntry and MarkExit", func() {
		BeforeEach(func() {
			passes.AddPass(approvedPass(1, "GP-20260830-0001", "R100"))
			_, err := service.FindOrCreateLog(gatelog.CreateLogDTO{PassID: "GP-20260830-0001"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should record entry with the marking officer", func() {
			log, err := service.MarkEntry("GP-20260830-0001", "Ravi Singh")
			Expect(err).NotTo(HaveOccurred())
			Expect(log.EntryTime).NotTo(BeNil())
			Expect(log.MarkedBy).To(Equal("Ravi Singh"))
			Expect(log.Status).To(Equal(gatelog.StatusInTransit))
		})

		It("should complete the log once exit is recorded", func() {
			_, err := service.MarkEntry("GP-20260830-0001", "Ravi Singh")
			Expect(err).NotTo(HaveOccurred())

			log, err := service.MarkExit("GP-20260830-0001")
			Expect(err).NotTo(HaveOccurred())
			Expect(log.ExitTime).NotTo(BeNil())
			Expect(log.Status).To(Equal(gatelog.StatusCompleted))
		})

		It("should allow exit before entry and report it completed", func() {
			log, err := service.MarkExit("GP-20260830-0001")
			Expect(err).NotTo(HaveOccurred())
			Expect(log.EntryTime).To(BeNil())
			Expect(log.Status).To(Equal(gatelog.StatusCompleted))
		})

		It("should fail for a pass without a log", func() {
			passes.AddPass(approvedPass(2, "GP-20260830-0002", "R101"))
			_, err := service.MarkEntry("GP-20260830-0002", "Ravi Singh")
			Expect(err).To(Equal(gatelog.ErrLogNotFound))
		})
	})
})
