package model

import "time"

// AllDay 周固定可用时间的全天哨兵值
const AllDay = "ALL_DAY"

// Employee 员工表 — 对应 employees
type Employee struct {
	EmployeeID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	Code           string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	PasswordHash   string `gorm:"type:varchar(255);not null"                     json:"-"`
	IsAdmin        bool   `gorm:"not null;default:false"                         json:"is_admin"`
	Priority       bool   `gorm:"not null;default:false"                         json:"priority"`
	MaxHoursPerDay int    `gorm:"type:smallint;not null;default:0"               json:"max_hours_per_day"` // 仅展示，当前排班逻辑不消费
	MaxDaysPerWeek int    `gorm:"type:smallint;not null;default:0"               json:"max_days_per_week"` // 0 表示不限制
	DisplayOrder   int    `gorm:"not null;default:0"                             json:"display_order"`
	BaseModel

	// 关联
	Roles          []EmployeeRole       `gorm:"foreignKey:EmployeeCode;references:Code" json:"roles,omitempty"`
	Availabilities []WeeklyAvailability `gorm:"foreignKey:EmployeeCode;references:Code" json:"availabilities,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// AvailabilityFor 返回指定星期（0=周日）的可用时间段列表
func (e *Employee) AvailabilityFor(weekday int) []string {
	var ranges []string
	for _, a := range e.Availabilities {
		if a.Weekday == weekday {
			ranges = append(ranges, a.TimeRange)
		}
	}
	return ranges
}

// HasRole 判断员工是否持有指定业务并返回是否为主业务
func (e *Employee) HasRole(businessTypeCode string) (held bool, isMain bool) {
	for _, r := range e.Roles {
		if r.BusinessTypeCode == businessTypeCode {
			return true, r.IsMain
		}
	}
	return false, false
}

// EmployeeRole 员工业务分配表 — 对应 employee_roles
// 每名员工恰好有一条 is_main=true 记录
type EmployeeRole struct {
	EmployeeRoleID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_role_id"`
	EmployeeCode     string    `gorm:"type:varchar(20);not null"                      json:"employee_code"`
	BusinessTypeCode string    `gorm:"type:varchar(20);not null"                      json:"business_type_code"`
	IsMain           bool      `gorm:"not null;default:false"                         json:"is_main"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (EmployeeRole) TableName() string { return "employee_roles" }

// WeeklyAvailability 周固定可用时间表 — 对应 weekly_availabilities
type WeeklyAvailability struct {
	AvailabilityID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"availability_id"`
	EmployeeCode   string    `gorm:"type:varchar(20);not null"                      json:"employee_code"`
	Weekday        int       `gorm:"type:smallint;not null"                         json:"weekday"`    // 0-6（0=周日）
	TimeRange      string    `gorm:"type:varchar(20);not null"                      json:"time_range"` // "HH:MM-HH:MM" 或 ALL_DAY
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (WeeklyAvailability) TableName() string { return "weekly_availabilities" }
