package gatepass

import "time"

// GatePass is the persistence shape for exit requests. Student display
// fields are denormalized at creation time and never refreshed.
type GatePass struct {
	ID           int64      `gorm:"primaryKey"`
	PassID       string     `gorm:"column:pass_id;uniqueIndex;not null"`
	StudentID    int64      `gorm:"column:student_id;not null"`
	StudentName  string     `gorm:"column:student_name;not null"`
	RollNumber   string     `gorm:"column:roll_number;not null"`
	Department   string     `gorm:"column:department;not null"`
	Reason       string     `gorm:"column:reason;not null"`
	Destination  string     `gorm:"column:destination;not null"`
	DateOfExit   time.Time  `gorm:"column:date_of_exit;not null"`
	ReturnTime   string     `gorm:"column:return_time;not null"`
	Status       string     `gorm:"column:status;default:pending"`
	HodRemarks   string     `gorm:"column:hod_remarks"`
	ApprovedBy   string     `gorm:"column:approved_by"`
	ApprovedDate *time.Time `gorm:"column:approved_date"`
	SubmittedDate time.Time `gorm:"column:submitted_date"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (GatePass) TableName() string {
	return "gate_passes"
}
