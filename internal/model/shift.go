package model

import "time"

// 排班表状态
const (
	ShiftStatusDraft     = "draft"
	ShiftStatusConfirmed = "confirmed"
)

// Shift 排班明细表 — 对应 shifts
// 不变式：每名员工每天至多一条记录（不支持一日内拆分班次）
type Shift struct {
	ShiftID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	EmployeeCode string    `gorm:"type:varchar(20);not null"                      json:"employee_code"`
	WorkDate     time.Time `gorm:"type:date;not null"                             json:"work_date"`
	TimeRange    string    `gorm:"type:varchar(20);not null"                      json:"time_range"` // "HH:MM-HH:MM"
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// ShiftStatus 月度排班状态表 — 对应 shift_statuses
type ShiftStatus struct {
	StatusID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"status_id"`
	Year     int    `gorm:"type:smallint;not null"                         json:"year"`
	Month    int    `gorm:"type:smallint;not null"                         json:"month"`
	Status   string `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"` // draft | confirmed
	Version  int    `gorm:"not null;default:1"                             json:"version"`
	BaseModel
}

// TableName 指定表名
func (ShiftStatus) TableName() string { return "shift_statuses" }

// ShiftRequest 员工月度出勤希望表 — 对应 shift_requests
// 每人每天一条：休假希望（is_off）或希望时间段，缺失表示无偏好
type ShiftRequest struct {
	RequestID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	EmployeeCode string `gorm:"type:varchar(20);not null"                      json:"employee_code"`
	Year         int    `gorm:"type:smallint;not null"                         json:"year"`
	Month        int    `gorm:"type:smallint;not null"                         json:"month"`
	Day          int    `gorm:"type:smallint;not null"                         json:"day"`
	IsOff        bool   `gorm:"not null;default:false"                         json:"is_off"`
	StartTime    string `gorm:"type:varchar(5)"                                json:"start_time,omitempty"` // "HH:MM"
	EndTime      string `gorm:"type:varchar(5)"                                json:"end_time,omitempty"`   // "HH:MM"
	BaseModel
}

// TableName 指定表名
func (ShiftRequest) TableName() string { return "shift_requests" }
