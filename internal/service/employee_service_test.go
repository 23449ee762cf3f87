package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// ── 测试辅助 ──

func setupTestEmployeeService() (EmployeeService, *mockRepos) {
	repo, mocks := newMockRepos()
	mocks.businessType.Create(context.Background(), &model.BusinessType{Code: "office", Name: "事务"})
	mocks.businessType.Create(context.Background(), &model.BusinessType{Code: "kitchen", Name: "厨房"})
	svc := NewEmployeeService(repo, zap.NewNop())
	return svc, mocks
}

func validCreateRequest() *dto.CreateEmployeeRequest {
	return &dto.CreateEmployeeRequest{
		Code:     "E001",
		Name:     "山田太郎",
		Password: "password123",
		Roles: []dto.RoleInput{
			{BusinessTypeCode: "office", IsMain: true},
		},
		Availabilities: []dto.AvailabilityInput{
			{Weekday: 1, TimeRange: "09:00-17:00"},
			{Weekday: 3, TimeRange: model.AllDay},
		},
	}
}

// ── Create 测试 ──

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	employee, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if employee.Code != "E001" {
		t.Errorf("期望Code=E001，实际=%s", employee.Code)
	}
	// 密码必须以 bcrypt 哈希存储
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("password123")); err != nil {
		t.Error("密码哈希校验失败")
	}
	if len(employee.Roles) != 1 || !employee.Roles[0].IsMain {
		t.Errorf("业务分配异常: %+v", employee.Roles)
	}
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	if _, err := svc.Create(context.Background(), validCreateRequest()); !errors.Is(err, ErrEmployeeCodeExists) {
		t.Errorf("期望 ErrEmployeeCodeExists，实际: %v", err)
	}
}

func TestEmployeeService_Create_NoMainRole(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	req := validCreateRequest()
	req.Roles = []dto.RoleInput{
		{BusinessTypeCode: "office", IsMain: false},
	}
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidMainRole) {
		t.Errorf("期望 ErrInvalidMainRole，实际: %v", err)
	}
}

func TestEmployeeService_Create_TwoMainRoles(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	req := validCreateRequest()
	req.Roles = []dto.RoleInput{
		{BusinessTypeCode: "office", IsMain: true},
		{BusinessTypeCode: "kitchen", IsMain: true},
	}
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidMainRole) {
		t.Errorf("期望 ErrInvalidMainRole，实际: %v", err)
	}
}

func TestEmployeeService_Create_UnknownBusinessType(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	req := validCreateRequest()
	req.Roles = []dto.RoleInput{
		{BusinessTypeCode: "nonexistent", IsMain: true},
	}
	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Error("不存在的业务种别应报错")
	}
}

func TestEmployeeService_Create_BadAvailability(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	req := validCreateRequest()
	req.Availabilities = []dto.AvailabilityInput{
		{Weekday: 1, TimeRange: "9:00-17:00"}, // 必须是两位小时
	}
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("期望 ErrInvalidTimeRange，实际: %v", err)
	}
}

// ── Update / Delete 测试 ──

func TestEmployeeService_Update_ReplacesRoles(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	updated, err := svc.Update(context.Background(), "E001", &dto.UpdateEmployeeRequest{
		Name: "山田次郎",
		Roles: []dto.RoleInput{
			{BusinessTypeCode: "kitchen", IsMain: true},
			{BusinessTypeCode: "office", IsMain: false},
		},
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Name != "山田次郎" {
		t.Errorf("期望姓名已更新，实际=%s", updated.Name)
	}
	if len(updated.Roles) != 2 {
		t.Fatalf("期望 2 条业务分配，实际 %d", len(updated.Roles))
	}
	held, isMain := updated.HasRole("kitchen")
	if !held || !isMain {
		t.Error("kitchen 应为主业务")
	}
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}
