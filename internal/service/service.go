package service

import (
	"go.uber.org/zap"

	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/jwt"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth           AuthService
	Employee       EmployeeService
	BusinessType   BusinessTypeService
	Event          EventService
	ShiftRequest   ShiftRequestService
	Shift          ShiftService
	ShiftCondition ShiftConditionService
	Export         ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(repo, jwtMgr, rdb, logger),
		Employee:       NewEmployeeService(repo, logger),
		BusinessType:   NewBusinessTypeService(repo, logger),
		Event:          NewEventService(repo, logger),
		ShiftRequest:   NewShiftRequestService(repo, logger),
		Shift:          NewShiftService(repo, logger),
		ShiftCondition: NewShiftConditionService(repo, logger),
		Export:         NewExportService(repo, logger),
	}
}
