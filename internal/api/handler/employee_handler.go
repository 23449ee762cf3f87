package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/service"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// List 员工列表
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, employees)
}

// Get 员工详情
// GET /api/v1/employees/:code
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.employeeSvc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 12001, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, employee)
}

// Create 创建员工
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	employee, err := h.employeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeCodeExists):
			response.Conflict(c, 12002, "员工编号已存在")
		case errors.Is(err, service.ErrInvalidMainRole),
			errors.Is(err, service.ErrInvalidTimeRange):
			response.BadRequest(c, 12003, err.Error())
		default:
			response.BadRequest(c, 12003, err.Error())
		}
		return
	}

	response.Created(c, employee)
}

// Update 更新员工
// PUT /api/v1/employees/:code
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	employee, err := h.employeeSvc.Update(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(c, 12001, "员工不存在")
		case errors.Is(err, service.ErrInvalidMainRole),
			errors.Is(err, service.ErrInvalidTimeRange):
			response.BadRequest(c, 12003, err.Error())
		default:
			response.BadRequest(c, 12003, err.Error())
		}
		return
	}

	response.OK(c, employee)
}

// Delete 删除员工
// DELETE /api/v1/employees/:code
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeSvc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 12001, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
