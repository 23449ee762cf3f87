package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// ShiftRepository 排班明细数据访问接口
type ShiftRepository interface {
	ListByMonth(ctx context.Context, year, month int) ([]model.Shift, error)
	ListByEmployeeAndMonth(ctx context.Context, code string, year, month int) ([]model.Shift, error)
	// ReplaceMonth 全量替换指定月份的排班（删除后重建，同一事务）
	ReplaceMonth(ctx context.Context, year, month int, shifts []model.Shift) error
}

// shiftRepo ShiftRepository 的 GORM 实现
type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *shiftRepo) ListByMonth(ctx context.Context, year, month int) ([]model.Shift, error) {
	start, end := monthBounds(year, month)

	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("work_date >= ? AND work_date < ?", start, end).
		Order("work_date ASC, employee_code ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepo) ListByEmployeeAndMonth(ctx context.Context, code string, year, month int) ([]model.Shift, error) {
	start, end := monthBounds(year, month)

	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("employee_code = ? AND work_date >= ? AND work_date < ?", code, start, end).
		Order("work_date ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepo) ReplaceMonth(ctx context.Context, year, month int, shifts []model.Shift) error {
	start, end := monthBounds(year, month)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_date >= ? AND work_date < ?", start, end).
			Delete(&model.Shift{}).Error; err != nil {
			return err
		}
		if len(shifts) == 0 {
			return nil
		}
		return tx.Create(&shifts).Error
	})
}
