package scheduler

import (
	"strings"
	"testing"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// ── 测试辅助 ──

func officeTypes() []model.BusinessType {
	return []model.BusinessType{
		{Code: "office", Name: "事务", BuildOrder: 1},
		{Code: "kitchen", Name: "厨房", BuildOrder: 2},
	}
}

func normalOperationsEvent(headcount int) *model.Event {
	return &model.Event{
		EventID: "ev-1",
		Name:    "通常营业",
		Requirements: []model.EventRequirement{
			{EventID: "ev-1", BusinessTypeCode: "office", TimeRange: "09:30-16:00", Headcount: headcount},
		},
	}
}

// withAvailability 覆盖员工周一的可用时间
func withAvailability(emp model.Employee, ranges ...string) model.Employee {
	emp.Availabilities = nil
	for _, r := range ranges {
		emp.Availabilities = append(emp.Availabilities,
			model.WeeklyAvailability{EmployeeCode: emp.Code, Weekday: 1, TimeRange: r})
	}
	return emp
}

func TestPlanDay_MainBeforeSecondary(t *testing.T) {
	sess := NewBuildSession(defaultSettings())

	// A 主业务 office、B 副业务 office，同样的可用时间
	a := withAvailability(testEmployee("A"), "09:30-16:00")
	b := withAvailability(testEmployee("B"), "09:30-16:00")
	b.Roles = []model.EmployeeRole{
		{EmployeeCode: "B", BusinessTypeCode: "office", IsMain: false},
		{EmployeeCode: "B", BusinessTypeCode: "kitchen", IsMain: true},
	}

	result := PlanDay(sess, []model.Employee{b, a}, normalOperationsEvent(1), officeTypes(), monday)

	if !result.Success {
		t.Fatal("当日应判定为成功")
	}
	if result.Assigned != 1 {
		t.Fatalf("期望排班 1 人，实际 %d", result.Assigned)
	}
	if rng, ok := sess.Assigned("A", monday); !ok || rng != "09:30-16:00" {
		t.Errorf("主业务候选 A 应被排入 09:30-16:00，实际=%q", rng)
	}
	if _, ok := sess.Assigned("B", monday); ok {
		t.Error("副业务候选 B 不应被排入")
	}
}

func TestPlanDay_SecondaryFillsShortfall(t *testing.T) {
	sess := NewBuildSession(defaultSettings())

	a := withAvailability(testEmployee("A"), "09:30-16:00")
	b := withAvailability(testEmployee("B"), "09:30-16:00")
	b.Roles = []model.EmployeeRole{
		{EmployeeCode: "B", BusinessTypeCode: "office", IsMain: false},
	}

	result := PlanDay(sess, []model.Employee{a, b}, normalOperationsEvent(2), officeTypes(), monday)

	if result.Assigned != 2 {
		t.Fatalf("主业务不足时副业务应补齐，期望 2 人，实际 %d", result.Assigned)
	}
	if _, ok := sess.Assigned("B", monday); !ok {
		t.Error("副业务候选 B 应补入缺口")
	}
}

func TestPlanDay_NoDoubleBooking(t *testing.T) {
	sess := NewBuildSession(defaultSettings())

	// 同一行事对 office 有两条需求，A 是唯一候选
	event := &model.Event{
		EventID: "ev-1",
		Name:    "通常营业",
		Requirements: []model.EventRequirement{
			{EventID: "ev-1", BusinessTypeCode: "office", TimeRange: "09:00-13:00", Headcount: 1, SortOrder: 1},
			{EventID: "ev-1", BusinessTypeCode: "office", TimeRange: "13:00-17:00", Headcount: 1, SortOrder: 2},
		},
	}
	a := withAvailability(testEmployee("A"), "09:00-17:00")

	result := PlanDay(sess, []model.Employee{a}, event, officeTypes(), monday)

	if result.Assigned != 1 {
		t.Errorf("每人每天至多一班，期望排班 1 次，实际 %d", result.Assigned)
	}
	if len(sess.Grid["A"]) != 1 {
		t.Errorf("网格中 A 应只有 1 条记录，实际 %d", len(sess.Grid["A"]))
	}
	// 第二条需求的缺口应被警告
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "人员不足") {
			found = true
		}
	}
	if !found {
		t.Error("未补齐的需求应产生人员不足警告")
	}
}

func TestPlanDay_BuildOrder(t *testing.T) {
	sess := NewBuildSession(defaultSettings())

	// kitchen 构建顺序先于 office；C 两业务皆可，应先被 kitchen 占用
	types := []model.BusinessType{
		{Code: "office", Name: "事务", BuildOrder: 2},
		{Code: "kitchen", Name: "厨房", BuildOrder: 1},
	}
	event := &model.Event{
		EventID: "ev-1",
		Name:    "通常营业",
		Requirements: []model.EventRequirement{
			{EventID: "ev-1", BusinessTypeCode: "office", TimeRange: "09:00-13:00", Headcount: 1},
			{EventID: "ev-1", BusinessTypeCode: "kitchen", TimeRange: "09:00-13:00", Headcount: 1},
		},
	}

	c := withAvailability(testEmployee("C"), "09:00-17:00")
	c.Roles = []model.EmployeeRole{
		{EmployeeCode: "C", BusinessTypeCode: "kitchen", IsMain: true},
		{EmployeeCode: "C", BusinessTypeCode: "office", IsMain: false},
	}

	result := PlanDay(sess, []model.Employee{c}, event, types, monday)

	if result.Assigned != 1 {
		t.Fatalf("期望排班 1 人，实际 %d", result.Assigned)
	}
	// C 被 kitchen 先占用，office 缺口警告
	foundOffice := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "office") && strings.Contains(w, "人员不足") {
			foundOffice = true
		}
	}
	if !foundOffice {
		t.Error("构建顺序靠后的 office 应出现人员不足警告")
	}
}

func TestPlanDay_WorkloadAccumulated(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	a := withAvailability(testEmployee("A"), "09:30-16:00")

	PlanDay(sess, []model.Employee{a}, normalOperationsEvent(1), officeTypes(), monday)

	w := sess.Workload["A"]
	if w == nil {
		t.Fatal("排班后应产生工作量记录")
	}
	if w.TotalHours != 6.5 {
		t.Errorf("期望累计 6.5 小时，实际 %v", w.TotalHours)
	}
	if w.TotalDays != 1 {
		t.Errorf("期望累计 1 天，实际 %d", w.TotalDays)
	}
	if !w.LastWorkDate.Equal(monday) {
		t.Errorf("最终出勤日期望 %v，实际 %v", monday, w.LastWorkDate)
	}
}

func TestCanAssign(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	required := mustRange(t, "09:30-16:00")

	// 固定可用时间完整包含所需时段
	a := withAvailability(testEmployee("A"), "09:00-17:00")
	if !canAssign(sess, &a, monday, required) {
		t.Error("可用时间包含所需时段时应可排")
	}

	// 全天哨兵
	b := withAvailability(testEmployee("B"), model.AllDay)
	if !canAssign(sess, &b, monday, required) {
		t.Error("全天可用时应可排")
	}

	// 仅部分重叠的固定时间不满足包含
	c := withAvailability(testEmployee("C"), "10:00-14:00")
	if canAssign(sess, &c, monday, required) {
		t.Error("固定时间不包含所需时段时不应可排")
	}

	// 希望时间段与所需时段重叠时可替代固定时间
	sess.SetRequest("C", monday, Request{TimeRange: "09:00-12:00"})
	if !canAssign(sess, &c, monday, required) {
		t.Error("希望时间段与所需时段重叠时应可排")
	}

	// 当天星期无条目
	d := testEmployee("D")
	d.Availabilities = nil
	if canAssign(sess, &d, monday, required) {
		t.Error("当天星期无可用时间时不应可排")
	}
}
