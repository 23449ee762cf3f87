package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	pkgerrors "github.com/nishida-sj/shift-management-system-sub000/pkg/errors"
)

// ShiftStatusRepository 月度排班状态数据访问接口
type ShiftStatusRepository interface {
	Create(ctx context.Context, status *model.ShiftStatus) error
	GetByMonth(ctx context.Context, year, month int) (*model.ShiftStatus, error)
	// UpdateStatus 乐观锁更新：version 不匹配时返回 ErrOptimisticLock
	UpdateStatus(ctx context.Context, status *model.ShiftStatus) error
}

// shiftStatusRepo ShiftStatusRepository 的 GORM 实现
type shiftStatusRepo struct {
	db *gorm.DB
}

// NewShiftStatusRepo 创建 ShiftStatusRepository 实例
func NewShiftStatusRepo(db *gorm.DB) ShiftStatusRepository {
	return &shiftStatusRepo{db: db}
}

func (r *shiftStatusRepo) Create(ctx context.Context, status *model.ShiftStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *shiftStatusRepo) GetByMonth(ctx context.Context, year, month int) (*model.ShiftStatus, error) {
	var status model.ShiftStatus
	err := r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *shiftStatusRepo) UpdateStatus(ctx context.Context, status *model.ShiftStatus) error {
	oldVersion := status.Version
	result := r.db.WithContext(ctx).
		Model(&model.ShiftStatus{}).
		Where("status_id = ? AND version = ?", status.StatusID, oldVersion).
		Updates(map[string]interface{}{
			"status":  status.Status,
			"version": oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	status.Version = oldVersion + 1
	return nil
}
