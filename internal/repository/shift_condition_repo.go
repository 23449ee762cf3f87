package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// ShiftConditionRepository 排班条件（单行配置）数据访问接口
type ShiftConditionRepository interface {
	Get(ctx context.Context) (*model.ShiftCondition, error)
	// Save 覆盖保存排班条件；尚无记录时创建
	Save(ctx context.Context, cond *model.ShiftCondition) error
}

// shiftConditionRepo ShiftConditionRepository 的 GORM 实现
type shiftConditionRepo struct {
	db *gorm.DB
}

// NewShiftConditionRepo 创建 ShiftConditionRepository 实例
func NewShiftConditionRepo(db *gorm.DB) ShiftConditionRepository {
	return &shiftConditionRepo{db: db}
}

func (r *shiftConditionRepo) Get(ctx context.Context) (*model.ShiftCondition, error) {
	var cond model.ShiftCondition
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&cond).Error
	if err != nil {
		return nil, err
	}
	return &cond, nil
}

func (r *shiftConditionRepo) Save(ctx context.Context, cond *model.ShiftCondition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ShiftCondition
		err := tx.Order("created_at ASC").First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(cond).Error
			}
			return err
		}
		cond.ConditionID = existing.ConditionID
		return tx.Model(&model.ShiftCondition{}).
			Where("condition_id = ?", existing.ConditionID).
			Updates(map[string]interface{}{
				"min_rest_hours":                  cond.MinRestHours,
				"max_consecutive_days":            cond.MaxConsecutiveDays,
				"min_rest_days_after_consecutive": cond.MinRestDaysAfterConsecutive,
				"time_slots":                      cond.TimeSlots,
				"prioritize_main_business":        cond.PrioritizeMainBusiness,
				"balance_workload":                cond.BalanceWorkload,
				"respect_time_preferences":        cond.RespectTimePreferences,
				"respect_off_requests":            cond.RespectOffRequests,
				"warn_consecutive_days":           cond.WarnConsecutiveDays,
				"warn_rest_hours":                 cond.WarnRestHours,
			}).Error
	})
}
