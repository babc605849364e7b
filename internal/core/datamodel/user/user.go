package user

import "time"

// User is the persistence shape for campus accounts. Roll number and
// employee id are sparse-unique: present only for the roles that carry them.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null"`
	RollNumber   *string   `gorm:"column:roll_number;uniqueIndex"`
	Department   *string   `gorm:"column:department"`
	EmployeeID   *string   `gorm:"column:employee_id;uniqueIndex"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
