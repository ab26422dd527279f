package employee

import (
	"time"

	"go-workforce/internal/backend/attendance"
)

type Employee struct {
	EmployeeID        string              `gorm:"type:varchar(64);primaryKey"`
	FullName          string              `gorm:"type:varchar(255);not null"`
	Email             string              `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Department        string              `gorm:"type:varchar(128);not null"`
	AttendanceRecords []attendance.Record `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Employee) TableName() string {
	return "employees"
}
