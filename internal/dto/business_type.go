package dto

// ── 业务种别模块 DTO ──

// CreateBusinessTypeRequest 创建业务种别请求
type CreateBusinessTypeRequest struct {
	Code       string `json:"code" binding:"required,max=20"`
	Name       string `json:"name" binding:"required,max=100"`
	BuildOrder int    `json:"build_order" binding:"min=0"`
}

// UpdateBusinessTypeRequest 更新业务种别请求
type UpdateBusinessTypeRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	BuildOrder int    `json:"build_order" binding:"min=0"`
}

// ReorderBusinessTypesRequest 批量调整构建顺序请求
type ReorderBusinessTypesRequest struct {
	Orders map[string]int `json:"orders" binding:"required,min=1"` // code → build_order
}
