package postgres

import (
	"strings"
	"time"

	gatepassDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/gatepass"
	"github.com/campuskit/gatepass-management/internal/gatepass"
	"gorm.io/gorm"
)

// GatePassRepository implements the gatepass.Repository interface using GORM
type GatePassRepository struct {
	db *gorm.DB
}

func NewGatePassRepository(db *gorm.DB) gatepass.Repository {
	return &GatePassRepository{db: db}
}

func (r *GatePassRepository) Create(p *gatepass.GatePass) error {
	dm := gatepass.ToDataModel(p)
	if err := r.db.Create(dm).Error; err != nil {
		if isUniqueViolation(err) {
			return gatepass.ErrDuplicatePassID
		}
		return err
	}
	p.ID = dm.ID
	return nil
}

func (r *GatePassRepository) CountByPassIDPrefix(prefix string) (int64, error) {
	var count int64
	err := r.db.Model(&gatepassDatamodel.GatePass{}).
		Where("pass_id LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *GatePassRepository) GetByPassID(passID string) (*gatepass.GatePass, error) {
	var dm gatepassDatamodel.GatePass
	err := r.db.Where("pass_id = ?", passID).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gatepass.ErrNotFound
		}
		return nil, err
	}
	return gatepass.FromDataModel(&dm), nil
}

func (r *GatePassRepository) ListByStudent(studentID int64) ([]*gatepass.GatePass, error) {
	var dms []*gatepassDatamodel.GatePass
	err := r.db.Where("student_id = ?", studentID).
		Order("submitted_date DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return gatepass.FromDataModelSlice(dms), nil
}

func (r *GatePassRepository) ListByDepartment(department string) ([]*gatepass.GatePass, error) {
	var dms []*gatepassDatamodel.GatePass
	err := r.db.Where("department = ?", department).
		Order("submitted_date DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return gatepass.FromDataModelSlice(dms), nil
}

func (r *GatePassRepository) UpdateDecision(passID, status, approvedBy, remarks string, decidedAt time.Time) (*gatepass.GatePass, error) {
	result := r.db.Model(&gatepassDatamodel.GatePass{}).
		Where("pass_id = ?", passID).
		Updates(map[string]interface{}{
			"status":        status,
			"approved_by":   approvedBy,
			"approved_date": decidedAt,
			"hod_remarks":   remarks,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gatepass.ErrNotFound
	}
	return r.GetByPassID(passID)
}

func (r *GatePassRepository) FindApprovedByQuery(query string) (*gatepass.GatePass, error) {
	var dm gatepassDatamodel.GatePass
	err := r.db.Where("(pass_id = ? OR roll_number = ?) AND status = ?", query, query, gatepass.StatusApproved).
		Order("submitted_date DESC").
		First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gatepass.ErrNotFound
		}
		return nil, err
	}
	return gatepass.FromDataModel(&dm), nil
}

// isUniqueViolation matches duplicate-key failures across postgres and the
// sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
