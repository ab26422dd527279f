package attendance

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, record *Record) error
	FindAll(ctx context.Context) ([]Record, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindAll lists newest date first; marks of one date in creation order.
func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
