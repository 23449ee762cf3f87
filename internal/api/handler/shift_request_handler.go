package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/service"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// ShiftRequestHandler 出勤希望模块 HTTP 处理器
type ShiftRequestHandler struct {
	requestSvc service.ShiftRequestService
}

// NewShiftRequestHandler 创建 ShiftRequestHandler
func NewShiftRequestHandler(requestSvc service.ShiftRequestService) *ShiftRequestHandler {
	return &ShiftRequestHandler{requestSvc: requestSvc}
}

// Save 保存本人的月度出勤希望（全量替换）
// PUT /api/v1/shift-requests
func (h *ShiftRequestHandler) Save(c *gin.Context) {
	code, ok := MustGetEmployeeCode(c)
	if !ok {
		return
	}

	var req dto.SaveShiftRequestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.requestSvc.Save(c.Request.Context(), code, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrMonthConfirmed):
			response.Conflict(c, 15001, "该月排班已确定，无法修改")
		case errors.Is(err, service.ErrInvalidDay),
			errors.Is(err, service.ErrInvalidRequest),
			errors.Is(err, service.ErrInvalidPrefTime):
			response.BadRequest(c, 15002, err.Error())
		default:
			response.BadRequest(c, 15002, err.Error())
		}
		return
	}
	response.OK(c, nil)
}

// ListMine 本人的月度出勤希望
// GET /api/v1/shift-requests?year=&month=
func (h *ShiftRequestHandler) ListMine(c *gin.Context) {
	code, ok := MustGetEmployeeCode(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}

	requests, err := h.requestSvc.ListByEmployee(c.Request.Context(), code, year, month)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, requests)
}

// ListAll 全员的月度出勤希望（管理员）
// GET /api/v1/shift-requests/all?year=&month=
func (h *ShiftRequestHandler) ListAll(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}

	requests, err := h.requestSvc.ListByMonth(c.Request.Context(), year, month)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, requests)
}
