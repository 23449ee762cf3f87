package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	"github.com/nishida-sj/shift-management-system-sub000/internal/scheduler"
)

// ShiftConditionService 排班条件业务接口
type ShiftConditionService interface {
	// Get 返回排班条件；尚未配置时返回默认值
	Get(ctx context.Context) (*model.ShiftCondition, error)
	Save(ctx context.Context, req *dto.SaveShiftConditionRequest) (*model.ShiftCondition, error)
}

type shiftConditionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftConditionService 创建 ShiftConditionService 实例
func NewShiftConditionService(repo *repository.Repository, logger *zap.Logger) ShiftConditionService {
	return &shiftConditionService{repo: repo, logger: logger}
}

func (s *shiftConditionService) Get(ctx context.Context) (*model.ShiftCondition, error) {
	cond, err := s.repo.ShiftCondition.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.DefaultShiftCondition(), nil
		}
		return nil, err
	}
	return cond, nil
}

func (s *shiftConditionService) Save(ctx context.Context, req *dto.SaveShiftConditionRequest) (*model.ShiftCondition, error) {
	for _, slot := range req.TimeSlots {
		if tr, err := scheduler.ParseRange(slot); err != nil || tr.Minutes() <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeRange, slot)
		}
	}

	cond := &model.ShiftCondition{
		MinRestHours:                req.MinRestHours,
		MaxConsecutiveDays:          req.MaxConsecutiveDays,
		MinRestDaysAfterConsecutive: req.MinRestDaysAfterConsecutive,
		TimeSlots:                   model.StringArray(req.TimeSlots),
		PrioritizeMainBusiness:      req.PrioritizeMainBusiness,
		BalanceWorkload:             req.BalanceWorkload,
		RespectTimePreferences:      req.RespectTimePreferences,
		RespectOffRequests:          req.RespectOffRequests,
		WarnConsecutiveDays:         req.WarnConsecutiveDays,
		WarnRestHours:               req.WarnRestHours,
	}
	if cond.TimeSlots == nil {
		cond.TimeSlots = model.StringArray{}
	}

	if err := s.repo.ShiftCondition.Save(ctx, cond); err != nil {
		s.logger.Error("保存排班条件失败", zap.Error(err))
		return nil, err
	}
	return cond, nil
}
