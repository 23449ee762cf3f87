package model

import "time"

// Event 行事（班次模板）表 — 对应 events
type Event struct {
	EventID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Name    string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel

	// 关联
	Requirements []EventRequirement `gorm:"foreignKey:EventID" json:"requirements,omitempty"`
}

// TableName 指定表名
func (Event) TableName() string { return "events" }

// RequirementsByRole 按业务种别分组人员需求，保持声明顺序
func (e *Event) RequirementsByRole() map[string][]EventRequirement {
	byRole := make(map[string][]EventRequirement)
	for _, r := range e.Requirements {
		byRole[r.BusinessTypeCode] = append(byRole[r.BusinessTypeCode], r)
	}
	return byRole
}

// EventRequirement 行事人员需求表 — 对应 event_requirements
type EventRequirement struct {
	RequirementID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"requirement_id"`
	EventID          string `gorm:"type:uuid;not null"                             json:"event_id"`
	BusinessTypeCode string `gorm:"type:varchar(20);not null"                      json:"business_type_code"`
	TimeRange        string `gorm:"type:varchar(20);not null"                      json:"time_range"` // "HH:MM-HH:MM"
	Headcount        int    `gorm:"type:smallint;not null;default:1"               json:"headcount"`
	SortOrder        int    `gorm:"not null;default:0"                             json:"sort_order"`
}

// TableName 指定表名
func (EventRequirement) TableName() string { return "event_requirements" }

// MonthlyEvent 月度行事分配表 — 对应 monthly_events
// 每个日期最多分配一个行事
type MonthlyEvent struct {
	MonthlyEventID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"monthly_event_id"`
	EventDate      time.Time `gorm:"type:date;not null;uniqueIndex"                 json:"event_date"`
	EventID        string    `gorm:"type:uuid;not null"                             json:"event_id"`
	BaseModel

	// 关联
	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName 指定表名
func (MonthlyEvent) TableName() string { return "monthly_events" }
