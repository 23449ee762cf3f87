package dto

// ── 行事模块 DTO ──

// RequirementInput 行事人员需求输入
type RequirementInput struct {
	BusinessTypeCode string `json:"business_type_code" binding:"required"`
	TimeRange        string `json:"time_range"         binding:"required"` // "HH:MM-HH:MM"
	Headcount        int    `json:"headcount"          binding:"required,min=1"`
	SortOrder        int    `json:"sort_order"         binding:"min=0"`
}

// CreateEventRequest 创建行事请求
type CreateEventRequest struct {
	Name         string             `json:"name"         binding:"required,max=100"`
	Requirements []RequirementInput `json:"requirements" binding:"omitempty,dive"`
}

// UpdateEventRequest 更新行事请求（人员需求全量替换）
type UpdateEventRequest struct {
	Name         string             `json:"name"         binding:"required,max=100"`
	Requirements []RequirementInput `json:"requirements" binding:"omitempty,dive"`
}

// AssignMonthlyEventRequest 为日期分配行事请求
type AssignMonthlyEventRequest struct {
	Date    string `json:"date"     binding:"required"` // "2006-01-02"
	EventID string `json:"event_id" binding:"required,uuid"`
}

// MonthlyCalendarDay 月度日历单日
type MonthlyCalendarDay struct {
	Date      string `json:"date"`
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
}

// MonthlyCalendarResponse 月度日历响应
type MonthlyCalendarResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  []MonthlyCalendarDay `json:"days"`
}
