package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// ShiftRequestRepository 出勤希望数据访问接口
type ShiftRequestRepository interface {
	ListByMonth(ctx context.Context, year, month int) ([]model.ShiftRequest, error)
	ListByEmployeeAndMonth(ctx context.Context, code string, year, month int) ([]model.ShiftRequest, error)
	// ReplaceMonth 全量替换某员工某个月的出勤希望（删除后重建，同一事务）
	ReplaceMonth(ctx context.Context, code string, year, month int, requests []model.ShiftRequest) error
}

// shiftRequestRepo ShiftRequestRepository 的 GORM 实现
type shiftRequestRepo struct {
	db *gorm.DB
}

// NewShiftRequestRepo 创建 ShiftRequestRepository 实例
func NewShiftRequestRepo(db *gorm.DB) ShiftRequestRepository {
	return &shiftRequestRepo{db: db}
}

func (r *shiftRequestRepo) ListByMonth(ctx context.Context, year, month int) ([]model.ShiftRequest, error) {
	var requests []model.ShiftRequest
	err := r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Order("employee_code ASC, day ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *shiftRequestRepo) ListByEmployeeAndMonth(ctx context.Context, code string, year, month int) ([]model.ShiftRequest, error) {
	var requests []model.ShiftRequest
	err := r.db.WithContext(ctx).
		Where("employee_code = ? AND year = ? AND month = ?", code, year, month).
		Order("day ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *shiftRequestRepo) ReplaceMonth(ctx context.Context, code string, year, month int, requests []model.ShiftRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_code = ? AND year = ? AND month = ?", code, year, month).
			Delete(&model.ShiftRequest{}).Error; err != nil {
			return err
		}
		if len(requests) == 0 {
			return nil
		}
		return tx.Create(&requests).Error
	})
}
