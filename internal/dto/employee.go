package dto

import "github.com/nishida-sj/shift-management-system-sub000/internal/model"

// ── 员工模块 DTO ──

// EmployeeBrief 员工摘要（登录响应、列表用）
type EmployeeBrief struct {
	EmployeeID string `json:"employee_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"is_admin"`
}

// NewEmployeeBrief 从模型构造员工摘要
func NewEmployeeBrief(e *model.Employee) EmployeeBrief {
	return EmployeeBrief{
		EmployeeID: e.EmployeeID,
		Code:       e.Code,
		Name:       e.Name,
		IsAdmin:    e.IsAdmin,
	}
}

// RoleInput 业务分配输入
type RoleInput struct {
	BusinessTypeCode string `json:"business_type_code" binding:"required"`
	IsMain           bool   `json:"is_main"`
}

// AvailabilityInput 周固定可用时间输入
type AvailabilityInput struct {
	Weekday   int    `json:"weekday"    binding:"min=0,max=6"`
	TimeRange string `json:"time_range" binding:"required"` // "HH:MM-HH:MM" 或 ALL_DAY
}

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	Code           string              `json:"code"     binding:"required,max=20"`
	Name           string              `json:"name"     binding:"required,max=100"`
	Password       string              `json:"password" binding:"required,min=8,max=20"`
	IsAdmin        bool                `json:"is_admin"`
	Priority       bool                `json:"priority"`
	MaxHoursPerDay int                 `json:"max_hours_per_day" binding:"min=0,max=24"`
	MaxDaysPerWeek int                 `json:"max_days_per_week" binding:"min=0,max=7"`
	DisplayOrder   int                 `json:"display_order"`
	Roles          []RoleInput         `json:"roles"          binding:"required,min=1,dive"`
	Availabilities []AvailabilityInput `json:"availabilities" binding:"omitempty,dive"`
}

// UpdateEmployeeRequest 更新员工请求（业务分配与可用时间全量替换）
type UpdateEmployeeRequest struct {
	Name           string              `json:"name" binding:"required,max=100"`
	IsAdmin        bool                `json:"is_admin"`
	Priority       bool                `json:"priority"`
	MaxHoursPerDay int                 `json:"max_hours_per_day" binding:"min=0,max=24"`
	MaxDaysPerWeek int                 `json:"max_days_per_week" binding:"min=0,max=7"`
	DisplayOrder   int                 `json:"display_order"`
	Roles          []RoleInput         `json:"roles"          binding:"required,min=1,dive"`
	Availabilities []AvailabilityInput `json:"availabilities" binding:"omitempty,dive"`
}
