package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/service"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// EventHandler 行事与月度日历模块 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// yearMonthQuery 提取并校验 ?year=&month= 查询参数
func yearMonthQuery(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(c, 10001, "year 参数无效")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, 10001, "month 参数无效")
		return 0, 0, false
	}
	return year, month, true
}

// List 行事列表
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, events)
}

// Get 行事详情
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 14001, "行事不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, event)
}

// Create 创建行事
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.BadRequest(c, 14002, err.Error())
		return
	}
	response.Created(c, event)
}

// Update 更新行事
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 14001, "行事不存在")
			return
		}
		response.BadRequest(c, 14002, err.Error())
		return
	}
	response.OK(c, event)
}

// Delete 删除行事
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 14001, "行事不存在")
		case errors.Is(err, service.ErrEventInUse):
			response.Conflict(c, 14003, "行事仍被月度日历引用，无法删除")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// MonthlyCalendar 月度行事日历
// GET /api/v1/calendar?year=&month=
func (h *EventHandler) MonthlyCalendar(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}

	calendar, err := h.eventSvc.MonthlyCalendar(c.Request.Context(), year, month)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, calendar)
}

// AssignToDate 为日期分配行事
// PUT /api/v1/calendar
func (h *EventHandler) AssignToDate(c *gin.Context) {
	var req dto.AssignMonthlyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.eventSvc.AssignToDate(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 14001, "行事不存在")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "日期格式无效")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ClearDate 清除日期的行事分配
// DELETE /api/v1/calendar/:date
func (h *EventHandler) ClearDate(c *gin.Context) {
	if err := h.eventSvc.ClearDate(c.Request.Context(), c.Param("date")); err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 10001, "日期格式无效")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
