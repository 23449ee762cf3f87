package scheduler

import (
	"testing"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

func TestCheckViolation_NoShift(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	emp := testEmployee("C")

	if r := CheckViolation(sess, &emp, monday, ""); r.Violation {
		t.Error("无班次不应判定为违规")
	}
}

func TestCheckViolation_OutsideAvailability(t *testing.T) {
	sess := NewBuildSession(defaultSettings())

	// C 周一仅 10:00-14:00 可用；排入 09:00-17:00（不被包含、无重叠希望）
	c := withAvailability(testEmployee("C"), "10:00-14:00")

	r := CheckViolation(sess, &c, monday, "09:00-17:00")
	if !r.Violation {
		t.Error("班次超出可用时间必须判定为违规")
	}
}

func TestCheckViolation_TextualMatch(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	c := withAvailability(testEmployee("C"), "10:00-14:00")

	// 与固定可用时间字符串完全一致 → 不违规
	if r := CheckViolation(sess, &c, monday, "10:00-14:00"); r.Violation {
		t.Errorf("与固定可用时间一致不应违规: %v", r.Reasons)
	}

	// 被包含但字符串不一致、且无重叠希望 → 违规（判定依据是字符串一致而非包含）
	if r := CheckViolation(sess, &c, monday, "11:00-13:00"); !r.Violation {
		t.Error("字符串不一致且无重叠希望时应违规")
	}
}

func TestCheckViolation_AllDay(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	c := withAvailability(testEmployee("C"), model.AllDay)

	if r := CheckViolation(sess, &c, monday, "03:00-23:00"); r.Violation {
		t.Errorf("全天可用不应违规: %v", r.Reasons)
	}
}

func TestCheckViolation_NoWeekdayEntry(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	c := testEmployee("C")
	c.Availabilities = nil

	if r := CheckViolation(sess, &c, monday, "09:00-17:00"); !r.Violation {
		t.Error("当天星期无可用时间时应违规")
	}
}

func TestCheckViolation_RequestOverlap(t *testing.T) {
	sess := NewBuildSession(defaultSettings())
	c := withAvailability(testEmployee("C"), "10:00-14:00")
	sess.SetRequest("C", monday, Request{TimeRange: "09:00-12:00"})

	// 希望时间段与班次重叠 → 不违规
	if r := CheckViolation(sess, &c, monday, "09:00-17:00"); r.Violation {
		t.Errorf("希望时间段与班次重叠不应违规: %v", r.Reasons)
	}
}

func TestCheckViolation_ConsecutiveDays(t *testing.T) {
	settings := defaultSettings()
	settings.MaxConsecutiveDays = 3
	sess := NewBuildSession(settings)

	c := testEmployee("C")
	c.Availabilities = nil
	for wd := 0; wd < 7; wd++ {
		c.Availabilities = append(c.Availabilities,
			model.WeeklyAvailability{EmployeeCode: "C", Weekday: wd, TimeRange: model.AllDay})
	}

	// 周一起连排 4 天
	for i := 0; i < 4; i++ {
		sess.SetAssigned("C", monday.AddDate(0, 0, i), "09:00-17:00")
	}

	thursday := monday.AddDate(0, 0, 3)
	r := CheckViolation(sess, &c, thursday, "09:00-17:00")
	if !r.Violation {
		t.Error("连勤 4 天超过上限 3 天应违规")
	}

	// 第 3 天尚未超限
	wednesday := monday.AddDate(0, 0, 2)
	sess2 := NewBuildSession(settings)
	for i := 0; i < 3; i++ {
		sess2.SetAssigned("C", monday.AddDate(0, 0, i), "09:00-17:00")
	}
	if r := CheckViolation(sess2, &c, wednesday, "09:00-17:00"); r.Violation {
		t.Errorf("连勤 3 天未超上限不应违规: %v", r.Reasons)
	}

	// 警告开关关闭时不判定
	settings.WarnConsecutiveDays = false
	sess3 := NewBuildSession(settings)
	for i := 0; i < 4; i++ {
		sess3.SetAssigned("C", monday.AddDate(0, 0, i), "09:00-17:00")
	}
	if r := CheckViolation(sess3, &c, thursday, "09:00-17:00"); r.Violation {
		t.Errorf("连勤警告关闭时不应违规: %v", r.Reasons)
	}
}

func TestCheckViolation_RestHours(t *testing.T) {
	settings := defaultSettings()
	settings.MinRestHours = 10
	settings.WarnConsecutiveDays = false
	sess := NewBuildSession(settings)

	c := testEmployee("C")
	c.Availabilities = nil
	for wd := 0; wd < 7; wd++ {
		c.Availabilities = append(c.Availabilities,
			model.WeeklyAvailability{EmployeeCode: "C", Weekday: wd, TimeRange: model.AllDay})
	}

	// 前日 13:00-22:00、当日 07:00-15:00 → 跨午夜休息 9 小时 < 10
	sess.SetAssigned("C", monday, "13:00-22:00")
	tuesday := monday.AddDate(0, 0, 1)
	sess.SetAssigned("C", tuesday, "07:00-15:00")

	r := CheckViolation(sess, &c, tuesday, "07:00-15:00")
	if !r.Violation {
		t.Error("与前日班次间休息 9 小时低于下限 10 小时应违规")
	}

	// 前日侧视角同样违规（与次日班次间休息不足）
	r2 := CheckViolation(sess, &c, monday, "13:00-22:00")
	if !r2.Violation {
		t.Error("与次日班次间休息不足同样应违规")
	}

	// 休息充足时不违规
	sess2 := NewBuildSession(settings)
	sess2.SetAssigned("C", monday, "09:00-17:00")
	sess2.SetAssigned("C", tuesday, "09:00-17:00")
	if r := CheckViolation(sess2, &c, tuesday, "09:00-17:00"); r.Violation {
		t.Errorf("休息 16 小时不应违规: %v", r.Reasons)
	}
}

func TestRestHours_CrossMidnight(t *testing.T) {
	// 22:00 结束 → 次日 07:00 开始：07:00 < 22:00 数值上更早，+24h 后 9 小时
	if got := restHours(22*60, 7*60); got != 9 {
		t.Errorf("期望 9 小时，实际 %v", got)
	}
	// 09:00 结束 → 次日 10:00 开始：数值上不早，直接求差 1 小时（与原实现一致）
	if got := restHours(9*60, 10*60); got != 1 {
		t.Errorf("期望 1 小时，实际 %v", got)
	}
}
