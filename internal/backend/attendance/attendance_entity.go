package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Record is one attendance mark. (EmployeeID, Date) is unique.
type Record struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	EmployeeID string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	Date       string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	Status     string    `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time
}

func (Record) TableName() string {
	return "attendance_records"
}
