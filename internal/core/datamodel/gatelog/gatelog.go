package gatelog

import "time"

// EntryExitLog is the persistence shape for the security gate ledger.
// At most one row exists per gate pass.
type EntryExitLog struct {
	ID          int64      `gorm:"primaryKey"`
	LogID       string     `gorm:"column:log_id;uniqueIndex;not null"`
	GatePassID  int64      `gorm:"column:gate_pass_id;uniqueIndex;not null"`
	StudentID   int64      `gorm:"column:student_id;not null"`
	StudentName string     `gorm:"column:student_name;not null"`
	RollNumber  string     `gorm:"column:roll_number;not null"`
	Department  string     `gorm:"column:department;not null"`
	EntryTime   *time.Time `gorm:"column:entry_time"`
	ExitTime    *time.Time `gorm:"column:exit_time"`
	MarkedBy    string     `gorm:"column:marked_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (EntryExitLog) TableName() string {
	return "entry_exit_logs"
}
