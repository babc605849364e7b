package postgres

import (
	"time"

	gatelogDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/gatelog"
	"github.com/campuskit/gatepass-management/internal/gatelog"
	"gorm.io/gorm"
)

// LogRepository implements the gatelog.Repository interface using GORM
type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) gatelog.Repository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&gatelogDatamodel.EntryExitLog{}).Count(&count).Error
	return count, err
}

func (r *LogRepository) Create(l *gatelog.EntryExitLog) error {
	dm := gatelog.ToDataModel(l)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	l.ID = dm.ID
	return nil
}

func (r *LogRepository) GetByGatePassID(gatePassID int64) (*gatelog.EntryExitLog, error) {
	var dm gatelogDatamodel.EntryExitLog
	err := r.db.Where("gate_pass_id = ?", gatePassID).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gatelog.ErrLogNotFound
		}
		return nil, err
	}
	return gatelog.FromDataModel(&dm), nil
}

func (r *LogRepository) SetEntry(gatePassID int64, at time.Time, markedBy string) (*gatelog.EntryExitLog, error) {
	result := r.db.Model(&gatelogDatamodel.EntryExitLog{}).
		Where("gate_pass_id = ?", gatePassID).
		Updates(map[string]interface{}{
			"entry_time": at,
			"marked_by":  markedBy,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gatelog.ErrLogNotFound
	}
	return r.GetByGatePassID(gatePassID)
}

func (r *LogRepository) SetExit(gatePassID int64, at time.Time) (*gatelog.EntryExitLog, error) {
	result := r.db.Model(&gatelogDatamodel.EntryExitLog{}).
		Where("gate_pass_id = ?", gatePassID).
		Updates(map[string]interface{}{
			"exit_time":  at,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gatelog.ErrLogNotFound
	}
	return r.GetByGatePassID(gatePassID)
}

func (r *LogRepository) ListRecent(limit int) ([]*gatelog.EntryExitLog, error) {
	var dms []*gatelogDatamodel.EntryExitLog
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return gatelog.FromDataModelSlice(dms), nil
}
