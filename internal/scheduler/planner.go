package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// DayResult 单日排班结果
type DayResult struct {
	Date     time.Time
	Assigned int
	Success  bool // 当日至少产生一条排班
	Warnings []string
}

// PlanDay 对单个日期执行一次行事排班。
// 按业务种别构建顺序（未设置按 999 最后处理）遍历行事的人员需求，
// 每条需求先用主业务池、不足再用副业务池补齐；
// 人手不足仅记录警告，不中断当日处理。
// 直接写入会话网格并累加工作量。
func PlanDay(sess *BuildSession, eligible []model.Employee, event *model.Event, types []model.BusinessType, date time.Time) DayResult {
	result := DayResult{Date: date}

	buildOrder := make(map[string]int, len(types))
	for _, bt := range types {
		buildOrder[bt.Code] = bt.BuildOrder
	}
	orderOf := func(code string) int {
		if o, ok := buildOrder[code]; ok && o > 0 {
			return o
		}
		return model.DefaultBuildOrder
	}

	// 业务种别按首次出现顺序收集，再按构建顺序稳定排序
	byRole := event.RequirementsByRole()
	roleCodes := make([]string, 0, len(byRole))
	seen := make(map[string]bool, len(byRole))
	for _, req := range event.Requirements {
		if !seen[req.BusinessTypeCode] {
			seen[req.BusinessTypeCode] = true
			roleCodes = append(roleCodes, req.BusinessTypeCode)
		}
	}
	sort.SliceStable(roleCodes, func(i, j int) bool {
		return orderOf(roleCodes[i]) < orderOf(roleCodes[j])
	})

	for _, roleCode := range roleCodes {
		reqs := byRole[roleCode]
		sort.SliceStable(reqs, func(i, j int) bool {
			return reqs[i].SortOrder < reqs[j].SortOrder
		})

		for _, req := range reqs {
			if req.Headcount <= 0 {
				continue // 该业务无需排人
			}

			tr, err := ParseRange(req.TimeRange)
			if err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s 业务 %s 需求时间段 %q 格式非法，已跳过", DateKey(date), roleCode, req.TimeRange))
				continue
			}

			remaining := req.Headcount

			// 主业务池优先
			mainPool := rolePool(sess, eligible, roleCode, true, date)
			remaining = assignFromPool(sess, mainPool, date, tr, req.TimeRange, remaining, true, &result)

			// 不足时用副业务池补齐
			if remaining > 0 {
				secondaryPool := rolePool(sess, eligible, roleCode, false, date)
				remaining = assignFromPool(sess, secondaryPool, date, tr, req.TimeRange, remaining, false, &result)
			}

			if remaining > 0 {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s 业务 %s 时段 %s 人员不足（缺 %d 人）", DateKey(date), roleCode, req.TimeRange, remaining))
			}
		}
	}

	result.Success = result.Assigned > 0
	return result
}

// rolePool 从可出勤员工中筛选持有指定业务、且当日尚未排班的候选池
func rolePool(sess *BuildSession, eligible []model.Employee, roleCode string, wantMain bool, date time.Time) []model.Employee {
	var pool []model.Employee
	for _, emp := range eligible {
		held, isMain := emp.HasRole(roleCode)
		if !held || isMain != wantMain {
			continue
		}
		if _, assigned := sess.Assigned(emp.Code, date); assigned {
			continue
		}
		pool = append(pool, emp)
	}
	return pool
}

// assignFromPool 对候选池排序后按序排班，返回剩余缺口
func assignFromPool(sess *BuildSession, pool []model.Employee, date time.Time, tr TimeRange, rangeText string, remaining int, mainPool bool, result *DayResult) int {
	for _, emp := range RankCandidates(sess, pool, date, mainPool) {
		if remaining <= 0 {
			break
		}
		if !canAssign(sess, &emp, date, tr) {
			continue
		}
		sess.Assign(emp.Code, date, tr, rangeText)
		result.Assigned++
		remaining--
	}
	return remaining
}

// canAssign 自动排班门禁：判断员工能否承接指定时段。
//  1. 当天星期无固定可用时间 → 不可
//  2. 含全天哨兵 → 可
//  3. 任一固定时间段完整包含所需时段 → 可
//  4. 当日有非休假的希望时间段且与所需时段重叠 → 可（希望时间段替代固定可用时间）
//  5. 其余 → 不可
func canAssign(sess *BuildSession, emp *model.Employee, date time.Time, required TimeRange) bool {
	ranges := emp.AvailabilityFor(int(date.Weekday()))
	if len(ranges) == 0 {
		return false
	}

	for _, r := range ranges {
		if r == model.AllDay {
			return true
		}
	}

	for _, r := range ranges {
		avail, err := ParseRange(r)
		if err != nil {
			continue // 非法的可用时间条目不参与判定
		}
		if avail.Contains(required) {
			return true
		}
	}

	if req, ok := sess.RequestFor(emp.Code, date); ok && !req.IsOff && req.TimeRange != "" {
		if pref, err := ParseRange(req.TimeRange); err == nil && pref.Overlaps(required) {
			return true
		}
	}

	return false
}
