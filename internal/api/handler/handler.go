package handler

import "github.com/nishida-sj/shift-management-system-sub000/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth           *AuthHandler
	Employee       *EmployeeHandler
	BusinessType   *BusinessTypeHandler
	Event          *EventHandler
	ShiftRequest   *ShiftRequestHandler
	Shift          *ShiftHandler
	ShiftCondition *ShiftConditionHandler
	Export         *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth, svc.Employee),
		Employee:       NewEmployeeHandler(svc.Employee),
		BusinessType:   NewBusinessTypeHandler(svc.BusinessType),
		Event:          NewEventHandler(svc.Event),
		ShiftRequest:   NewShiftRequestHandler(svc.ShiftRequest),
		Shift:          NewShiftHandler(svc.Shift),
		ShiftCondition: NewShiftConditionHandler(svc.ShiftCondition),
		Export:         NewExportHandler(svc.Export),
	}
}
