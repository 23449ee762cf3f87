package model

// DefaultBuildOrder 未设置构建顺序时的默认值（最后处理）
const DefaultBuildOrder = 999

// BusinessType 业务种别表 — 对应 business_types
type BusinessType struct {
	BusinessTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"business_type_id"`
	Code           string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	BuildOrder     int    `gorm:"not null;default:999"                           json:"build_order"` // 越小越先排
	BaseModel
}

// TableName 指定表名
func (BusinessType) TableName() string { return "business_types" }
