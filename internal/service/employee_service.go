package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	"github.com/nishida-sj/shift-management-system-sub000/internal/scheduler"
)

var (
	ErrEmployeeNotFound   = errors.New("员工不存在")
	ErrEmployeeCodeExists = errors.New("员工编号已存在")
	ErrInvalidMainRole    = errors.New("每名员工必须恰好有一个主业务")
	ErrInvalidTimeRange   = errors.New("时间段格式无效")
)

// EmployeeService 员工管理业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*model.Employee, error)
	Get(ctx context.Context, code string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, code string, req *dto.UpdateEmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, code string) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// validateRoles 校验业务分配：恰好一个主业务，业务种别存在
func (s *employeeService) validateRoles(ctx context.Context, roles []dto.RoleInput) error {
	mainCount := 0
	seen := make(map[string]bool)
	for _, r := range roles {
		if seen[r.BusinessTypeCode] {
			return fmt.Errorf("业务 %s 重复分配", r.BusinessTypeCode)
		}
		seen[r.BusinessTypeCode] = true
		if r.IsMain {
			mainCount++
		}
		if _, err := s.repo.BusinessType.GetByCode(ctx, r.BusinessTypeCode); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("业务种别 %s 不存在", r.BusinessTypeCode)
			}
			return err
		}
	}
	if mainCount != 1 {
		return ErrInvalidMainRole
	}
	return nil
}

// validateAvailabilities 校验周固定可用时间：ALL_DAY 或可解析的时间段
func validateAvailabilities(avails []dto.AvailabilityInput) error {
	for _, a := range avails {
		if a.TimeRange == model.AllDay {
			continue
		}
		tr, err := scheduler.ParseRange(a.TimeRange)
		if err != nil || tr.Minutes() <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTimeRange, a.TimeRange)
		}
	}
	return nil
}

func rolesFromInput(code string, inputs []dto.RoleInput) []model.EmployeeRole {
	roles := make([]model.EmployeeRole, 0, len(inputs))
	for _, r := range inputs {
		roles = append(roles, model.EmployeeRole{
			EmployeeCode:     code,
			BusinessTypeCode: r.BusinessTypeCode,
			IsMain:           r.IsMain,
		})
	}
	return roles
}

func availabilitiesFromInput(code string, inputs []dto.AvailabilityInput) []model.WeeklyAvailability {
	avails := make([]model.WeeklyAvailability, 0, len(inputs))
	for _, a := range inputs {
		avails = append(avails, model.WeeklyAvailability{
			EmployeeCode: code,
			Weekday:      a.Weekday,
			TimeRange:    a.TimeRange,
		})
	}
	return avails
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*model.Employee, error) {
	if _, err := s.repo.Employee.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrEmployeeCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.validateRoles(ctx, req.Roles); err != nil {
		return nil, err
	}
	if err := validateAvailabilities(req.Availabilities); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Code:           req.Code,
		Name:           req.Name,
		PasswordHash:   string(hash),
		IsAdmin:        req.IsAdmin,
		Priority:       req.Priority,
		MaxHoursPerDay: req.MaxHoursPerDay,
		MaxDaysPerWeek: req.MaxDaysPerWeek,
		DisplayOrder:   req.DisplayOrder,
		Roles:          rolesFromInput(req.Code, req.Roles),
		Availabilities: availabilitiesFromInput(req.Code, req.Availabilities),
	}

	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		s.logger.Error("创建员工失败", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Get(ctx context.Context, code string) (*model.Employee, error) {
	employee, err := s.repo.Employee.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.Employee.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, code string, req *dto.UpdateEmployeeRequest) (*model.Employee, error) {
	if _, err := s.repo.Employee.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if err := s.validateRoles(ctx, req.Roles); err != nil {
		return nil, err
	}
	if err := validateAvailabilities(req.Availabilities); err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Code:           code,
		Name:           req.Name,
		IsAdmin:        req.IsAdmin,
		Priority:       req.Priority,
		MaxHoursPerDay: req.MaxHoursPerDay,
		MaxDaysPerWeek: req.MaxDaysPerWeek,
		DisplayOrder:   req.DisplayOrder,
	}
	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.repo.Employee.ReplaceRoles(ctx, code, rolesFromInput(code, req.Roles)); err != nil {
		return nil, err
	}
	if err := s.repo.Employee.ReplaceAvailabilities(ctx, code, availabilitiesFromInput(code, req.Availabilities)); err != nil {
		return nil, err
	}

	return s.repo.Employee.GetByCode(ctx, code)
}

func (s *employeeService) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.Employee.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return s.repo.Employee.Delete(ctx, code)
}
