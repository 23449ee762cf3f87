package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	"github.com/nishida-sj/shift-management-system-sub000/internal/scheduler"
)

var (
	ErrMonthConfirmed  = errors.New("该月排班已确定，无法修改")
	ErrInvalidDay      = errors.New("日期超出该月范围")
	ErrInvalidRequest  = errors.New("休假希望与时间段希望不能同时填写")
	ErrInvalidPrefTime = errors.New("希望时间段无效")
)

// ShiftRequestService 出勤希望业务接口
type ShiftRequestService interface {
	Save(ctx context.Context, code string, req *dto.SaveShiftRequestsRequest) error
	ListByEmployee(ctx context.Context, code string, year, month int) ([]model.ShiftRequest, error)
	ListByMonth(ctx context.Context, year, month int) ([]model.ShiftRequest, error)
}

type shiftRequestService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftRequestService 创建 ShiftRequestService 实例
func NewShiftRequestService(repo *repository.Repository, logger *zap.Logger) ShiftRequestService {
	return &shiftRequestService{repo: repo, logger: logger}
}

// monthIsConfirmed 判断指定月份排班是否已确定（状态记录缺失视为草稿）
func monthIsConfirmed(ctx context.Context, repo *repository.Repository, year, month int) (bool, error) {
	status, err := repo.ShiftStatus.GetByMonth(ctx, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return status.Status == model.ShiftStatusConfirmed, nil
}

func (s *shiftRequestService) Save(ctx context.Context, code string, req *dto.SaveShiftRequestsRequest) error {
	confirmed, err := monthIsConfirmed(ctx, s.repo, req.Year, req.Month)
	if err != nil {
		return err
	}
	if confirmed {
		return ErrMonthConfirmed
	}

	daysInMonth := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var records []model.ShiftRequest
	seen := make(map[int]bool)
	for _, in := range req.Requests {
		if in.Day > daysInMonth {
			return fmt.Errorf("%w: %d", ErrInvalidDay, in.Day)
		}
		if seen[in.Day] {
			return fmt.Errorf("第 %d 天的希望重复", in.Day)
		}
		seen[in.Day] = true

		hasTime := in.StartTime != "" || in.EndTime != ""
		if in.IsOff && hasTime {
			return ErrInvalidRequest
		}
		if !in.IsOff && !hasTime {
			continue // 无偏好，不落库
		}
		if hasTime {
			if in.StartTime == "" || in.EndTime == "" {
				return ErrInvalidPrefTime
			}
			tr, err := scheduler.ParseRange(in.StartTime + "-" + in.EndTime)
			if err != nil || tr.Minutes() <= 0 {
				return fmt.Errorf("%w: %s-%s", ErrInvalidPrefTime, in.StartTime, in.EndTime)
			}
		}

		records = append(records, model.ShiftRequest{
			EmployeeCode: code,
			Year:         req.Year,
			Month:        req.Month,
			Day:          in.Day,
			IsOff:        in.IsOff,
			StartTime:    in.StartTime,
			EndTime:      in.EndTime,
		})
	}

	if err := s.repo.ShiftRequest.ReplaceMonth(ctx, code, req.Year, req.Month, records); err != nil {
		s.logger.Error("保存出勤希望失败",
			zap.String("code", code),
			zap.Int("year", req.Year),
			zap.Int("month", req.Month),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *shiftRequestService) ListByEmployee(ctx context.Context, code string, year, month int) ([]model.ShiftRequest, error) {
	return s.repo.ShiftRequest.ListByEmployeeAndMonth(ctx, code, year, month)
}

func (s *shiftRequestService) ListByMonth(ctx context.Context, year, month int) ([]model.ShiftRequest, error) {
	return s.repo.ShiftRequest.ListByMonth(ctx, year, month)
}
