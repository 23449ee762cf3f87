package dto

// ── 排班模块 DTO ──

// AutoBuildRequest 自动排班请求
type AutoBuildRequest struct {
	Year  int `json:"year"  binding:"required,min=2000,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// AutoBuildResponse 自动排班结果摘要
type AutoBuildResponse struct {
	StaffedDays int      `json:"staffed_days"`
	SkippedDays int      `json:"skipped_days"`
	Warnings    []string `json:"warnings,omitempty"`
}

// ShiftCell 排班网格单元格（含违规标记）
type ShiftCell struct {
	Date      string   `json:"date"` // "2006-01-02"
	TimeRange string   `json:"time_range"`
	Violation bool     `json:"violation"`
	Reasons   []string `json:"reasons,omitempty"`
}

// ShiftGridRow 排班网格单行（一名员工当月的班次）
type ShiftGridRow struct {
	EmployeeCode string      `json:"employee_code"`
	EmployeeName string      `json:"employee_name"`
	Cells        []ShiftCell `json:"cells"`
}

// ShiftGridResponse 月度排班网格响应
type ShiftGridResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Status string         `json:"status"` // draft | confirmed
	Rows   []ShiftGridRow `json:"rows"`
}

// ShiftCellInput 保存排班网格的单元格输入
type ShiftCellInput struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Date         string `json:"date"          binding:"required"` // "2006-01-02"
	TimeRange    string `json:"time_range"    binding:"required"` // "HH:MM-HH:MM"
}

// SaveShiftsRequest 保存月度排班请求（全量替换，后写覆盖先写）
type SaveShiftsRequest struct {
	Year   int              `json:"year"   binding:"required,min=2000,max=2100"`
	Month  int              `json:"month"  binding:"required,min=1,max=12"`
	Shifts []ShiftCellInput `json:"shifts" binding:"omitempty,dive"`
}

// ValidateCellRequest 单元格违规校验请求
type ValidateCellRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Date         string `json:"date"          binding:"required"` // "2006-01-02"
	TimeRange    string `json:"time_range"`
}

// ValidateCellResponse 单元格违规校验响应
type ValidateCellResponse struct {
	Violation bool     `json:"violation"`
	Reasons   []string `json:"reasons,omitempty"`
}

// ConfirmShiftsRequest 确定/解除确定月度排班请求
type ConfirmShiftsRequest struct {
	Year    int `json:"year"    binding:"required,min=2000,max=2100"`
	Month   int `json:"month"   binding:"required,min=1,max=12"`
	Version int `json:"version" binding:"min=0"`
}
