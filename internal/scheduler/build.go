package scheduler

import (
	"fmt"
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// BuildInput 月度排班的全部输入，由调用方一次性加载
type BuildInput struct {
	Year  int
	Month int

	// Roster 全员名册（含业务分配与周固定可用时间），顺序即并列时的优先顺序
	Roster []model.Employee

	// Types 业务种别（提供构建顺序）
	Types []model.BusinessType

	// Events 日期键 → 当日行事（含人员需求）；无行事的日期缺失
	Events map[string]*model.Event
}

// BuildResult 月度排班结果
type BuildResult struct {
	StaffedDays int
	SkippedDays int
	Days        []DayResult
	Warnings    []string
}

// BuildMonth 月度编排入口：逐日查找行事、过滤可出勤员工、执行单日排班，
// 并在会话内累积排班网格与工作量。
// 单日失败（无行事、无可出勤员工、人手不足）只记录并跳过，绝不中断整月。
func BuildMonth(sess *BuildSession, in BuildInput) BuildResult {
	var result BuildResult

	daysInMonth := time.Date(in.Year, time.Month(in.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(in.Year, time.Month(in.Month), day, 0, 0, 0, 0, time.UTC)

		event, ok := in.Events[DateKey(date)]
		if !ok || event == nil {
			result.SkippedDays++ // 当日无行事
			continue
		}
		if len(event.Requirements) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s 行事 %q 无人员需求，已跳过", DateKey(date), event.Name))
			result.SkippedDays++
			continue
		}

		eligible := EligibleEmployees(sess, in.Roster, date)
		if len(eligible) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s 无可出勤员工，已跳过", DateKey(date)))
			result.SkippedDays++
			continue
		}

		dayResult := PlanDay(sess, eligible, event, in.Types, date)
		result.Days = append(result.Days, dayResult)
		result.Warnings = append(result.Warnings, dayResult.Warnings...)

		if dayResult.Success {
			result.StaffedDays++
		} else {
			result.SkippedDays++
		}
	}

	return result
}
