package model

// ShiftCondition 排班条件表（单行配置） — 对应 shift_conditions
type ShiftCondition struct {
	ConditionID                 string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"condition_id"`
	MinRestHours                int         `gorm:"type:smallint;not null;default:10"              json:"min_rest_hours"`
	MaxConsecutiveDays          int         `gorm:"type:smallint;not null;default:5"               json:"max_consecutive_days"`
	MinRestDaysAfterConsecutive int         `gorm:"type:smallint;not null;default:1"               json:"min_rest_days_after_consecutive"`
	TimeSlots                   StringArray `gorm:"type:text[];not null;default:'{}'"              json:"time_slots"` // 画面用时间段预设
	PrioritizeMainBusiness      bool        `gorm:"not null;default:true"                          json:"prioritize_main_business"`
	BalanceWorkload             bool        `gorm:"not null;default:true"                          json:"balance_workload"`
	RespectTimePreferences      bool        `gorm:"not null;default:true"                          json:"respect_time_preferences"`
	RespectOffRequests          bool        `gorm:"not null;default:true"                          json:"respect_off_requests"`
	WarnConsecutiveDays         bool        `gorm:"not null;default:true"                          json:"warn_consecutive_days"`
	WarnRestHours               bool        `gorm:"not null;default:true"                          json:"warn_rest_hours"`
	BaseModel
}

// TableName 指定表名
func (ShiftCondition) TableName() string { return "shift_conditions" }

// DefaultShiftCondition 返回配置缺失时使用的默认排班条件
func DefaultShiftCondition() *ShiftCondition {
	return &ShiftCondition{
		MinRestHours:                10,
		MaxConsecutiveDays:          5,
		MinRestDaysAfterConsecutive: 1,
		TimeSlots:                   StringArray{"09:00-13:00", "13:00-17:00", "09:00-17:00"},
		PrioritizeMainBusiness:      true,
		BalanceWorkload:             true,
		RespectTimePreferences:      true,
		RespectOffRequests:          true,
		WarnConsecutiveDays:         true,
		WarnRestHours:               true,
	}
}
