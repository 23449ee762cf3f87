package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	"github.com/nishida-sj/shift-management-system-sub000/internal/scheduler"
)

var ErrStatusNotFound = errors.New("该月排班状态不存在")

// ShiftService 排班业务接口：自动排班、网格读写、违规校验、月度确定
type ShiftService interface {
	AutoBuild(ctx context.Context, req *dto.AutoBuildRequest) (*dto.AutoBuildResponse, error)
	GetGrid(ctx context.Context, year, month int) (*dto.ShiftGridResponse, error)
	SaveGrid(ctx context.Context, req *dto.SaveShiftsRequest) error
	ValidateCell(ctx context.Context, req *dto.ValidateCellRequest) (*dto.ValidateCellResponse, error)
	Confirm(ctx context.Context, req *dto.ConfirmShiftsRequest) error
	Unconfirm(ctx context.Context, req *dto.ConfirmShiftsRequest) error
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

// loadSettings 加载排班条件并转换为引擎设置；未配置时使用默认值
func (s *shiftService) loadSettings(ctx context.Context) (scheduler.Settings, error) {
	cond, err := s.repo.ShiftCondition.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cond = model.DefaultShiftCondition()
		} else {
			return scheduler.Settings{}, err
		}
	}
	return scheduler.SettingsFromCondition(cond), nil
}

// loadRequests 将当月出勤希望灌入会话
func (s *shiftService) loadRequests(ctx context.Context, sess *scheduler.BuildSession, year, month int) error {
	requests, err := s.repo.ShiftRequest.ListByMonth(ctx, year, month)
	if err != nil {
		return err
	}
	for _, r := range requests {
		date := time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
		req := scheduler.Request{IsOff: r.IsOff}
		if !r.IsOff && r.StartTime != "" && r.EndTime != "" {
			req.TimeRange = r.StartTime + "-" + r.EndTime
		}
		sess.SetRequest(r.EmployeeCode, date, req)
	}
	return nil
}

// loadShifts 将已持久化的班次灌入会话；可解析的班次同时计入工作量
func loadShifts(sess *scheduler.BuildSession, shifts []model.Shift) {
	for _, sh := range shifts {
		if tr, err := scheduler.ParseRange(sh.TimeRange); err == nil {
			sess.Assign(sh.EmployeeCode, sh.WorkDate, tr, sh.TimeRange)
		} else {
			sess.SetAssigned(sh.EmployeeCode, sh.WorkDate, sh.TimeRange)
		}
	}
}

func (s *shiftService) AutoBuild(ctx context.Context, req *dto.AutoBuildRequest) (*dto.AutoBuildResponse, error) {
	confirmed, err := monthIsConfirmed(ctx, s.repo, req.Year, req.Month)
	if err != nil {
		return nil, err
	}
	if confirmed {
		return nil, ErrMonthConfirmed
	}

	// 名册与行事需求加载失败中止构建，其余缺失降级处理
	roster, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("加载员工名册失败", zap.Error(err))
		return nil, err
	}
	types, err := s.repo.BusinessType.List(ctx)
	if err != nil {
		return nil, err
	}
	monthlyEvents, err := s.repo.MonthlyEvent.ListByMonth(ctx, req.Year, req.Month)
	if err != nil {
		s.logger.Error("加载月度行事失败", zap.Error(err))
		return nil, err
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	sess := scheduler.NewBuildSession(settings)

	if err := s.loadRequests(ctx, sess, req.Year, req.Month); err != nil {
		return nil, err
	}

	// 既有班次（含手工编辑）保留，自动排班只补空缺
	existing, err := s.repo.Shift.ListByMonth(ctx, req.Year, req.Month)
	if err != nil {
		return nil, err
	}
	loadShifts(sess, existing)

	events := make(map[string]*model.Event, len(monthlyEvents))
	for i := range monthlyEvents {
		me := &monthlyEvents[i]
		if me.Event != nil {
			events[scheduler.DateKey(me.EventDate)] = me.Event
		}
	}

	result := scheduler.BuildMonth(sess, scheduler.BuildInput{
		Year:   req.Year,
		Month:  req.Month,
		Roster: roster,
		Types:  types,
		Events: events,
	})

	if err := s.repo.Shift.ReplaceMonth(ctx, req.Year, req.Month, shiftsFromGrid(sess)); err != nil {
		s.logger.Error("保存排班失败", zap.Error(err))
		return nil, err
	}
	s.ensureStatus(ctx, req.Year, req.Month)

	s.logger.Info("自动排班完成",
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("staffed_days", result.StaffedDays),
		zap.Int("skipped_days", result.SkippedDays))

	return &dto.AutoBuildResponse{
		StaffedDays: result.StaffedDays,
		SkippedDays: result.SkippedDays,
		Warnings:    result.Warnings,
	}, nil
}

// shiftsFromGrid 将会话网格转换为持久化记录
func shiftsFromGrid(sess *scheduler.BuildSession) []model.Shift {
	var shifts []model.Shift
	for code, row := range sess.Grid {
		for dateKey, rangeText := range row {
			if rangeText == "" {
				continue
			}
			date, err := time.ParseInLocation("2006-01-02", dateKey, time.UTC)
			if err != nil {
				continue
			}
			shifts = append(shifts, model.Shift{
				EmployeeCode: code,
				WorkDate:     date,
				TimeRange:    rangeText,
			})
		}
	}
	return shifts
}

// ensureStatus 确保月度状态记录存在（草稿）；失败仅记录
func (s *shiftService) ensureStatus(ctx context.Context, year, month int) {
	if _, err := s.repo.ShiftStatus.GetByMonth(ctx, year, month); err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("查询排班状态失败", zap.Error(err))
		return
	}
	status := &model.ShiftStatus{Year: year, Month: month, Status: model.ShiftStatusDraft, Version: 1}
	if err := s.repo.ShiftStatus.Create(ctx, status); err != nil {
		s.logger.Warn("创建排班状态失败", zap.Error(err))
	}
}

// gridSession 构建用于违规判定的会话：设置 + 当月希望 + 当月班次
func (s *shiftService) gridSession(ctx context.Context, year, month int) (*scheduler.BuildSession, []model.Shift, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, nil, err
	}
	sess := scheduler.NewBuildSession(settings)
	if err := s.loadRequests(ctx, sess, year, month); err != nil {
		return nil, nil, err
	}
	shifts, err := s.repo.Shift.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, nil, err
	}
	for _, sh := range shifts {
		sess.SetAssigned(sh.EmployeeCode, sh.WorkDate, sh.TimeRange)
	}
	return sess, shifts, nil
}

func (s *shiftService) GetGrid(ctx context.Context, year, month int) (*dto.ShiftGridResponse, error) {
	roster, err := s.repo.Employee.List(ctx)
	if err != nil {
		return nil, err
	}
	sess, shifts, err := s.gridSession(ctx, year, month)
	if err != nil {
		return nil, err
	}

	statusText := model.ShiftStatusDraft
	if status, err := s.repo.ShiftStatus.GetByMonth(ctx, year, month); err == nil {
		statusText = status.Status
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	byEmployee := make(map[string][]model.Shift)
	for _, sh := range shifts {
		byEmployee[sh.EmployeeCode] = append(byEmployee[sh.EmployeeCode], sh)
	}

	resp := &dto.ShiftGridResponse{Year: year, Month: month, Status: statusText}
	for i := range roster {
		emp := &roster[i]
		row := dto.ShiftGridRow{EmployeeCode: emp.Code, EmployeeName: emp.Name}
		for _, sh := range byEmployee[emp.Code] {
			verdict := scheduler.CheckViolation(sess, emp, sh.WorkDate, sh.TimeRange)
			row.Cells = append(row.Cells, dto.ShiftCell{
				Date:      scheduler.DateKey(sh.WorkDate),
				TimeRange: sh.TimeRange,
				Violation: verdict.Violation,
				Reasons:   verdict.Reasons,
			})
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

func (s *shiftService) SaveGrid(ctx context.Context, req *dto.SaveShiftsRequest) error {
	confirmed, err := monthIsConfirmed(ctx, s.repo, req.Year, req.Month)
	if err != nil {
		return err
	}
	if confirmed {
		return ErrMonthConfirmed
	}

	shifts := make([]model.Shift, 0, len(req.Shifts))
	seen := make(map[string]bool)
	for _, in := range req.Shifts {
		date, err := time.ParseInLocation("2006-01-02", in.Date, time.UTC)
		if err != nil {
			return ErrInvalidDate
		}
		if int(date.Month()) != req.Month || date.Year() != req.Year {
			return ErrInvalidDate
		}
		if tr, err := scheduler.ParseRange(in.TimeRange); err != nil || tr.Minutes() <= 0 {
			return ErrInvalidTimeRange
		}
		// 同一员工同一天后写覆盖先写
		key := in.EmployeeCode + "@" + in.Date
		if seen[key] {
			for i := range shifts {
				if shifts[i].EmployeeCode == in.EmployeeCode && scheduler.DateKey(shifts[i].WorkDate) == in.Date {
					shifts[i].TimeRange = in.TimeRange
				}
			}
			continue
		}
		seen[key] = true
		shifts = append(shifts, model.Shift{
			EmployeeCode: in.EmployeeCode,
			WorkDate:     date,
			TimeRange:    in.TimeRange,
		})
	}

	if err := s.repo.Shift.ReplaceMonth(ctx, req.Year, req.Month, shifts); err != nil {
		s.logger.Error("保存排班网格失败", zap.Error(err))
		return err
	}
	s.ensureStatus(ctx, req.Year, req.Month)
	return nil
}

func (s *shiftService) ValidateCell(ctx context.Context, req *dto.ValidateCellRequest) (*dto.ValidateCellResponse, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}
	emp, err := s.repo.Employee.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	sess, _, err := s.gridSession(ctx, date.Year(), int(date.Month()))
	if err != nil {
		return nil, err
	}
	// 校验的是编辑中的值，覆盖会话中已持久化的同格内容
	sess.SetAssigned(req.EmployeeCode, date, req.TimeRange)

	verdict := scheduler.CheckViolation(sess, emp, date, req.TimeRange)
	return &dto.ValidateCellResponse{
		Violation: verdict.Violation,
		Reasons:   verdict.Reasons,
	}, nil
}

func (s *shiftService) setStatus(ctx context.Context, req *dto.ConfirmShiftsRequest, target string) error {
	status, err := s.repo.ShiftStatus.GetByMonth(ctx, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if target == model.ShiftStatusConfirmed {
				// 尚无状态记录时直接按确定创建
				return s.repo.ShiftStatus.Create(ctx, &model.ShiftStatus{
					Year:    req.Year,
					Month:   req.Month,
					Status:  model.ShiftStatusConfirmed,
					Version: 1,
				})
			}
			return ErrStatusNotFound
		}
		return err
	}

	if status.Status == target {
		return nil
	}
	if req.Version > 0 {
		status.Version = req.Version
	}
	status.Status = target
	return s.repo.ShiftStatus.UpdateStatus(ctx, status)
}

func (s *shiftService) Confirm(ctx context.Context, req *dto.ConfirmShiftsRequest) error {
	return s.setStatus(ctx, req, model.ShiftStatusConfirmed)
}

func (s *shiftService) Unconfirm(ctx context.Context, req *dto.ConfirmShiftsRequest) error {
	return s.setStatus(ctx, req, model.ShiftStatusDraft)
}
