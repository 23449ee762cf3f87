package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/service"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// ShiftConditionHandler 排班条件模块 HTTP 处理器
type ShiftConditionHandler struct {
	condSvc service.ShiftConditionService
}

// NewShiftConditionHandler 创建 ShiftConditionHandler
func NewShiftConditionHandler(condSvc service.ShiftConditionService) *ShiftConditionHandler {
	return &ShiftConditionHandler{condSvc: condSvc}
}

// Get 排班条件（未配置时返回默认值）
// GET /api/v1/shift-conditions
func (h *ShiftConditionHandler) Get(c *gin.Context) {
	cond, err := h.condSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, cond)
}

// Save 保存排班条件（整体覆盖）
// PUT /api/v1/shift-conditions
func (h *ShiftConditionHandler) Save(c *gin.Context) {
	var req dto.SaveShiftConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cond, err := h.condSvc.Save(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			response.BadRequest(c, 16001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, cond)
}
