package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is the presence flag of one employee on one calendar date. A
// date without a row is unmarked and counts as absent.
type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	IsPresent      bool      `gorm:"column:is_present;not null;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// RosterRow is one employee of the daily roster. IsPresent is nil when the
// day was never marked.
type RosterRow struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id"`
	Name       string    `gorm:"column:name"`
	Department string    `gorm:"column:department"`
	IsPresent  *bool     `gorm:"column:is_present"`
}
