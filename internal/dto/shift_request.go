package dto

// ── 出勤希望模块 DTO ──

// ShiftRequestInput 单日出勤希望输入
// is_off 与时间段互斥；二者皆空的条目视为无偏好，不落库
type ShiftRequestInput struct {
	Day       int    `json:"day"        binding:"required,min=1,max=31"`
	IsOff     bool   `json:"is_off"`
	StartTime string `json:"start_time" binding:"omitempty,len=5"` // "HH:MM"
	EndTime   string `json:"end_time"   binding:"omitempty,len=5"` // "HH:MM"
}

// SaveShiftRequestsRequest 保存月度出勤希望请求（全量替换）
type SaveShiftRequestsRequest struct {
	Year     int                 `json:"year"     binding:"required,min=2000,max=2100"`
	Month    int                 `json:"month"    binding:"required,min=1,max=12"`
	Requests []ShiftRequestInput `json:"requests" binding:"omitempty,dive"`
}
