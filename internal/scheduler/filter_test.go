package scheduler

import (
	"testing"
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// ── 测试辅助 ──

// 2026-06-01 是周一
var monday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func defaultSettings() Settings {
	return Settings{
		RespectOffRequests:     true,
		PrioritizeMainBusiness: true,
		BalanceWorkload:        true,
		RespectTimePreferences: true,
		WarnConsecutiveDays:    true,
		WarnRestHours:          true,
		MaxConsecutiveDays:     5,
		MinRestHours:           10,
	}
}

// testEmployee 构造一名持 office 主业务、周一 09:00-17:00 可用的员工
func testEmployee(code string) model.Employee {
	return model.Employee{
		Code: code,
		Name: "员工" + code,
		Roles: []model.EmployeeRole{
			{EmployeeCode: code, BusinessTypeCode: "office", IsMain: true},
		},
		Availabilities: []model.WeeklyAvailability{
			{EmployeeCode: code, Weekday: 1, TimeRange: "09:00-17:00"},
		},
	}
}

func TestEligibleEmployees_NoWeekdayAvailability(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	emp := testEmployee("E001")

	// 周二无可用时间条目
	tuesday := monday.AddDate(0, 0, 1)
	if got := EligibleEmployees(sess, []model.Employee{emp}, tuesday); len(got) != 0 {
		t.Errorf("周二无可用时间，期望被排除，实际入选 %d 人", len(got))
	}
	if got := EligibleEmployees(sess, []model.Employee{emp}, monday); len(got) != 1 {
		t.Errorf("周一有可用时间，期望入选，实际 %d 人", len(got))
	}
}

func TestEligibleEmployees_OffRequestExclusion(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	emp := testEmployee("E001")
	sess.SetRequest("E001", monday, Request{IsOff: true})

	if got := EligibleEmployees(sess, []model.Employee{emp}, monday); len(got) != 0 {
		t.Errorf("有休假希望且尊重休假希望，期望被排除，实际入选 %d 人", len(got))
	}

	// 关闭「尊重休假希望」后应入选
	settings := defaultSettings()
	settings.RespectOffRequests = false
	sess2 := NewBuildSession(settings)
	sess2.SetRequest("E001", monday, Request{IsOff: true})
	if got := EligibleEmployees(sess2, []model.Employee{emp}, monday); len(got) != 1 {
		t.Errorf("关闭尊重休假希望后期望入选，实际 %d 人", len(got))
	}
}

func TestEligibleEmployees_WeeklyCap(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	emp := testEmployee("E001")
	emp.MaxDaysPerWeek = 2

	// 同一 ISO 周内已排 2 天（周一、周二）
	sess.SetAssigned("E001", monday, "09:00-17:00")
	sess.SetAssigned("E001", monday.AddDate(0, 0, 1), "09:00-17:00")

	// 周四（同一 ISO 周）达上限
	emp.Availabilities = append(emp.Availabilities,
		model.WeeklyAvailability{EmployeeCode: "E001", Weekday: 4, TimeRange: "09:00-17:00"})
	thursday := monday.AddDate(0, 0, 3)
	if got := EligibleEmployees(sess, []model.Employee{emp}, thursday); len(got) != 0 {
		t.Errorf("周内已排 %d 天达上限，期望被排除", emp.MaxDaysPerWeek)
	}

	// 下一个 ISO 周重新计数
	nextMonday := monday.AddDate(0, 0, 7)
	if got := EligibleEmployees(sess, []model.Employee{emp}, nextMonday); len(got) != 1 {
		t.Error("跨 ISO 周后周上限应重新计数")
	}
}

func TestEligibleEmployees_OrderPreserved(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	roster := []model.Employee{testEmployee("E003"), testEmployee("E001"), testEmployee("E002")}

	got := EligibleEmployees(sess, roster, monday)
	if len(got) != 3 {
		t.Fatalf("期望 3 人入选，实际 %d", len(got))
	}
	for i, code := range []string{"E003", "E001", "E002"} {
		if got[i].Code != code {
			t.Errorf("第 %d 位期望 %s，实际 %s（应保持入参顺序）", i, code, got[i].Code)
		}
	}
}

func TestIsoWeekStart(t *testing.T) {
	// 周日属于前一个周一开始的 ISO 周
	sunday := monday.AddDate(0, 0, 6)
	if got := isoWeekStart(sunday); !got.Equal(monday) {
		t.Errorf("周日的 ISO 周起点期望 %v，实际 %v", monday, got)
	}
	if got := isoWeekStart(monday); !got.Equal(monday) {
		t.Errorf("周一的 ISO 周起点应为自身，实际 %v", got)
	}
}
