package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/service"
	pkgerrors "github.com/nishida-sj/shift-management-system-sub000/pkg/errors"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// ShiftHandler 排班模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// AutoBuild 自动排班
// POST /api/v1/shifts/auto
func (h *ShiftHandler) AutoBuild(c *gin.Context) {
	var req dto.AutoBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.shiftSvc.AutoBuild(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMonthConfirmed) {
			response.Conflict(c, 15001, "该月排班已确定，无法修改")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetGrid 月度排班网格（含违规标记）
// GET /api/v1/shifts?year=&month=
func (h *ShiftHandler) GetGrid(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}

	grid, err := h.shiftSvc.GetGrid(c.Request.Context(), year, month)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, grid)
}

// SaveGrid 保存月度排班网格（全量替换）
// PUT /api/v1/shifts
func (h *ShiftHandler) SaveGrid(c *gin.Context) {
	var req dto.SaveShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.shiftSvc.SaveGrid(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrMonthConfirmed):
			response.Conflict(c, 15001, "该月排班已确定，无法修改")
		case errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrInvalidTimeRange):
			response.BadRequest(c, 15002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ValidateCell 校验单个排班单元格
// POST /api/v1/shifts/validate
func (h *ShiftHandler) ValidateCell(c *gin.Context) {
	var req dto.ValidateCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.shiftSvc.ValidateCell(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(c, 12001, "员工不存在")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "日期格式无效")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// Confirm 确定月度排班
// POST /api/v1/shifts/confirm
func (h *ShiftHandler) Confirm(c *gin.Context) {
	setStatus(c, h.shiftSvc.Confirm)
}

// Unconfirm 解除月度排班确定
// POST /api/v1/shifts/unconfirm
func (h *ShiftHandler) Unconfirm(c *gin.Context) {
	setStatus(c, h.shiftSvc.Unconfirm)
}

func setStatus(c *gin.Context, op func(ctx context.Context, req *dto.ConfirmShiftsRequest) error) {
	var req dto.ConfirmShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := op(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			response.Conflict(c, 15003, "数据已被其他操作修改，请刷新后重试")
		case errors.Is(err, service.ErrStatusNotFound):
			response.NotFound(c, 15004, "该月排班状态不存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
