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
	ErrEventNotFound = errors.New("行事不存在")
	ErrEventInUse    = errors.New("行事仍被月度日历引用，无法删除")
	ErrInvalidDate   = errors.New("日期格式无效")
)

const dateLayout = "2006-01-02"

// EventService 行事与月度日历管理业务接口
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*model.Event, error)
	Get(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, id string) error

	AssignToDate(ctx context.Context, req *dto.AssignMonthlyEventRequest) error
	ClearDate(ctx context.Context, date string) error
	MonthlyCalendar(ctx context.Context, year, month int) (*dto.MonthlyCalendarResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// validateRequirements 校验人员需求：业务种别存在、时间段可解析
func (s *eventService) validateRequirements(ctx context.Context, reqs []dto.RequirementInput) error {
	for _, r := range reqs {
		if _, err := s.repo.BusinessType.GetByCode(ctx, r.BusinessTypeCode); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("业务种别 %s 不存在", r.BusinessTypeCode)
			}
			return err
		}
		tr, err := scheduler.ParseRange(r.TimeRange)
		if err != nil || tr.Minutes() <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTimeRange, r.TimeRange)
		}
	}
	return nil
}

func requirementsFromInput(eventID string, inputs []dto.RequirementInput) []model.EventRequirement {
	reqs := make([]model.EventRequirement, 0, len(inputs))
	for _, r := range inputs {
		reqs = append(reqs, model.EventRequirement{
			EventID:          eventID,
			BusinessTypeCode: r.BusinessTypeCode,
			TimeRange:        r.TimeRange,
			Headcount:        r.Headcount,
			SortOrder:        r.SortOrder,
		})
	}
	return reqs
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*model.Event, error) {
	if err := s.validateRequirements(ctx, req.Requirements); err != nil {
		return nil, err
	}

	event := &model.Event{Name: req.Name}
	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("创建行事失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	if len(req.Requirements) > 0 {
		if err := s.repo.Event.ReplaceRequirements(ctx, event.EventID, requirementsFromInput(event.EventID, req.Requirements)); err != nil {
			return nil, err
		}
	}
	return s.repo.Event.GetByID(ctx, event.EventID)
}

func (s *eventService) Get(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.Event.List(ctx)
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*model.Event, error) {
	if _, err := s.repo.Event.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if err := s.validateRequirements(ctx, req.Requirements); err != nil {
		return nil, err
	}

	if err := s.repo.Event.Update(ctx, &model.Event{EventID: id, Name: req.Name}); err != nil {
		return nil, err
	}
	if err := s.repo.Event.ReplaceRequirements(ctx, id, requirementsFromInput(id, req.Requirements)); err != nil {
		return nil, err
	}
	return s.repo.Event.GetByID(ctx, id)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Event.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	refs, err := s.repo.Event.CountMonthlyRefs(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrEventInUse
	}

	return s.repo.Event.Delete(ctx, id)
}

func (s *eventService) AssignToDate(ctx context.Context, req *dto.AssignMonthlyEventRequest) error {
	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return ErrInvalidDate
	}
	if _, err := s.repo.Event.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	return s.repo.MonthlyEvent.Upsert(ctx, &model.MonthlyEvent{
		EventDate: date,
		EventID:   req.EventID,
	})
}

func (s *eventService) ClearDate(ctx context.Context, dateStr string) error {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return ErrInvalidDate
	}
	return s.repo.MonthlyEvent.DeleteByDate(ctx, date)
}

func (s *eventService) MonthlyCalendar(ctx context.Context, year, month int) (*dto.MonthlyCalendarResponse, error) {
	items, err := s.repo.MonthlyEvent.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	resp := &dto.MonthlyCalendarResponse{Year: year, Month: month}
	for _, me := range items {
		day := dto.MonthlyCalendarDay{
			Date:    me.EventDate.Format(dateLayout),
			EventID: me.EventID,
		}
		if me.Event != nil {
			day.EventName = me.Event.Name
		}
		resp.Days = append(resp.Days, day)
	}
	return resp, nil
}
