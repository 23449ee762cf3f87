package dto

// ── 排班条件模块 DTO ──

// SaveShiftConditionRequest 保存排班条件请求（整体覆盖）
type SaveShiftConditionRequest struct {
	MinRestHours                int      `json:"min_rest_hours"                  binding:"min=0,max=24"`
	MaxConsecutiveDays          int      `json:"max_consecutive_days"            binding:"min=0,max=31"`
	MinRestDaysAfterConsecutive int      `json:"min_rest_days_after_consecutive" binding:"min=0,max=7"`
	TimeSlots                   []string `json:"time_slots"`
	PrioritizeMainBusiness      bool     `json:"prioritize_main_business"`
	BalanceWorkload             bool     `json:"balance_workload"`
	RespectTimePreferences      bool     `json:"respect_time_preferences"`
	RespectOffRequests          bool     `json:"respect_off_requests"`
	WarnConsecutiveDays         bool     `json:"warn_consecutive_days"`
	WarnRestHours               bool     `json:"warn_rest_hours"`
}
