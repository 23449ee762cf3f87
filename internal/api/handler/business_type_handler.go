package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/service"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// BusinessTypeHandler 业务种别模块 HTTP 处理器
type BusinessTypeHandler struct {
	btSvc service.BusinessTypeService
}

// NewBusinessTypeHandler 创建 BusinessTypeHandler
func NewBusinessTypeHandler(btSvc service.BusinessTypeService) *BusinessTypeHandler {
	return &BusinessTypeHandler{btSvc: btSvc}
}

// List 业务种别列表（按构建顺序）
// GET /api/v1/business-types
func (h *BusinessTypeHandler) List(c *gin.Context) {
	types, err := h.btSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, types)
}

// Create 创建业务种别
// POST /api/v1/business-types
func (h *BusinessTypeHandler) Create(c *gin.Context) {
	var req dto.CreateBusinessTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	bt, err := h.btSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrBusinessTypeExists) {
			response.Conflict(c, 13001, "业务种别代码已存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, bt)
}

// Update 更新业务种别
// PUT /api/v1/business-types/:code
func (h *BusinessTypeHandler) Update(c *gin.Context) {
	var req dto.UpdateBusinessTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	bt, err := h.btSvc.Update(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		if errors.Is(err, service.ErrBusinessTypeNotFound) {
			response.NotFound(c, 13002, "业务种别不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, bt)
}

// Delete 删除业务种别
// DELETE /api/v1/business-types/:code
func (h *BusinessTypeHandler) Delete(c *gin.Context) {
	if err := h.btSvc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessTypeNotFound):
			response.NotFound(c, 13002, "业务种别不存在")
		case errors.Is(err, service.ErrBusinessTypeInUse):
			response.Conflict(c, 13003, "业务种别仍被员工分配，无法删除")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// Reorder 批量调整构建顺序
// PUT /api/v1/business-types/order
func (h *BusinessTypeHandler) Reorder(c *gin.Context) {
	var req dto.ReorderBusinessTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.btSvc.Reorder(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrBusinessTypeNotFound) {
			response.NotFound(c, 13002, "业务种别不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
