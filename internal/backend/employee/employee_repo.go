package employee

import (
	"context"

	"go-workforce/internal/backend/attendance"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("AttendanceRecords").Create(empl).Error
}

func newestRecordsFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at ASC")
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("AttendanceRecords", newestRecordsFirst).
		Order("created_at ASC").
		Order("employee_id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("AttendanceRecords", newestRecordsFirst).
		First(&empl, "employee_id = ?", id).Error
	return &empl, err
}

// Delete removes the employee and its attendance rows and reports how many
// rows of attendance went with it. Run it inside a transaction.
func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	db := r.db.WithContext(ctx)

	records := db.Where("employee_id = ?", id).Delete(&attendance.Record{})
	if records.Error != nil {
		return 0, records.Error
	}

	res := db.Where("employee_id = ?", id).Delete(&Employee{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return records.RowsAffected, nil
}
