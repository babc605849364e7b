package postgres_test

import (
	"testing"
	"time"

	gatepassDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/gatepass"
	"github.com/campuskit/gatepass-management/internal/gatepass"
	gatepassPostgres "github.com/campuskit/gatepass-management/internal/gatepass/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGatePassPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "GatePass Postgres Suite")
}

var _ = Describe("GatePass PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo gatepass.Repository
	)

	newPass := func(passID string, submitted time.Time) *gatepass.GatePass {
		return &gatepass.GatePass{
			PassID:        passID,
			StudentID:     1,
			StudentName:   "Alice Kumar",
			RollNumber:    "R100",
			Department:    "CSE",
			Reason:        "Medical appointment",
			Destination:   "City hospital",
			DateOfExit:    submitted.Add(24 * time.Hour),
			ReturnTime:    "18:00",
			Status:        gatepass.StatusPending,
			SubmittedDate: submitted,
			CreatedAt:     submitted,
			UpdatedAt:     submitted,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&gatepassDatamodel.GatePass{})
		Expect(err).NotTo(HaveOccurred())

		repo = gatepassPostgres.NewGatePassRepository(db)
	})

	Describe("Create", func() {
		It("should persist a pass and backfill the id", func() {
			p := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(p)).To(Succeed())
			Expect(p.ID).To(BeNumerically(">", 0))
		})

		It("should reject a duplicate pass id", func() {
			Expect(repo.Create(newPass("GP-20260830-0001", time.Now()))).To(Succeed())
			err := repo.Create(newPass("GP-20260830-0001", time.Now()))
			Expect(err).To(Equal(gatepass.ErrDuplicatePassID))
		})
	})

	Describe("CountByPassIDPrefix", func() {
		It("should count only passes under the prefix", func() {
			Expect(repo.Create(newPass("GP-20260830-0001", time.Now()))).To(Succeed())
			Expect(repo.Create(newPass("GP-20260830-0002", time.Now()))).To(Succeed())
			Expect(repo.Create(newPass("GP-20260829-0001", time.Now()))).To(Succeed())

			count, err := repo.CountByPassIDPrefix("GP-20260830")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})
	})

	Describe("ListByStudent", func() {
		It("should order newest submission first", func() {
			older := newPass("GP-20260829-0001", time.Now().Add(-48*time.Hour))
			newer := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(older)).To(Succeed())
			Expect(repo.Create(newer)).To(Succeed())

			passes, err := repo.ListByStudent(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(passes).To(HaveLen(2))
			Expect(passes[0].PassID).To(Equal("GP-20260830-0001"))
		})
	})

	Describe("UpdateDecision", func() {
		It("should overwrite the decision fields", func() {
			p := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(p)).To(Succeed())

			decided := time.Now()
			updated, err := repo.UpdateDecision(p.PassID, gatepass.StatusApproved, "Dr. Rao", "Return before curfew", decided)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(gatepass.StatusApproved))
			Expect(updated.ApprovedBy).To(Equal("Dr. Rao"))
			Expect(updated.HodRemarks).To(Equal("Return before curfew"))
			Expect(updated.ApprovedDate).NotTo(BeNil())
		})

		It("should not inspect the current status", func() {
			p := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(p)).To(Succeed())

			_, err := repo.UpdateDecision(p.PassID, gatepass.StatusRejected, "Dr. Rao", "Exams next week", time.Now())
			Expect(err).NotTo(HaveOccurred())

			updated, err := repo.UpdateDecision(p.PassID, gatepass.StatusApproved, "Dr. Rao", "Reconsidered", time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(gatepass.StatusApproved))
		})

		It("should return ErrNotFound for a missing pass", func() {
			_, err := repo.UpdateDecision("GP-20200101-9999", gatepass.StatusApproved, "Dr. Rao", "", time.Now())
			Expect(err).To(Equal(gatepass.ErrNotFound))
		})
	})

	Describe("FindApprovedByQuery", func() {
		It("should skip pending and rejected passes", func() {
			p := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(p)).To(Succeed())

			_, err := repo.FindApprovedByQuery("R100")
			Expect(err).To(Equal(gatepass.ErrNotFound))
		})

		It("should match an approved pass by pass id or roll number", func() {
			p := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(p)).To(Succeed())
			_, err := repo.UpdateDecision(p.PassID, gatepass.StatusApproved, "Dr. Rao", "", time.Now())
			Expect(err).NotTo(HaveOccurred())

			byPassID, err := repo.FindApprovedByQuery("GP-20260830-0001")
			Expect(err).NotTo(HaveOccurred())
			Expect(byPassID.PassID).To(Equal("GP-20260830-0001"))

			byRoll, err := repo.FindApprovedByQuery("R100")
			Expect(err).NotTo(HaveOccurred())
			Expect(byRoll.PassID).To(Equal("GP-20260830-0001"))
		})

		It("should prefer the most recently submitted match", func() {
			older := newPass("GP-20260829-0001", time.Now().Add(-48*time.Hour))
			newer := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(older)).To(Succeed())
			Expect(repo.Create(newer)).To(Succeed())
			for _, id := range []string{older.PassID, newer.PassID} {
				_, err := repo.UpdateDecision(id, gatepass.StatusApproved, "Dr. Rao", "", time.Now())
				Expect(err).NotTo(HaveOccurred())
			}

			found, err := repo.FindApprovedByQuery("R100")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.PassID).To(Equal("GP-20260830-0001"))
		})

		It("should not match substrings", func() {
			p := newPass("GP-20260830-0001", time.Now())
			Expect(repo.Create(p)).To(Succeed())
			_, err := repo.UpdateDecision(p.PassID, gatepass.StatusApproved, "Dr. Rao", "", time.Now())
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.FindApprovedByQuery("R10")
			Expect(err).To(Equal(gatepass.ErrNotFound))
		})
	})
})
