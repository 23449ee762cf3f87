package scheduler

import (
	"fmt"
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// consecutiveScanLimit 连勤判定向前回溯的最大天数
const consecutiveScanLimit = 10

// ViolationResult 违规判定结果
type ViolationResult struct {
	Violation bool
	Reasons   []string
}

func (r *ViolationResult) add(reason string) {
	r.Violation = true
	r.Reasons = append(r.Reasons, reason)
}

// CheckViolation 判定已排班次是否违反员工申报的可用性。
// 与 canAssign 不同：canAssign 把关自动排班，本函数对网格中已存在的
// 班次（无论自动还是手动产生）做事后判定，用于画面红色高亮与手动
// 调整时的警告。全系统唯一实现，所有调用方均为薄封装。
//
// 基础判定：
//  1. 无班次 → 不违规
//  2. 当天星期无固定可用时间 → 违规
//  3. 含全天哨兵 → 不违规
//  4. 班次与某条固定可用时间字符串完全一致 → 不违规
//  5. 当日非休假希望时间段与班次重叠 → 不违规
//  6. 其余 → 违规
//
// 扩展判定（按警告开关独立评估，结果并入最终判定）：
// 连勤超上限（向前回溯至多 10 天）、与相邻日班次间休息不足
// （跨午夜：次日开始早于前日结束的数值时 +24h 再求差）。
func CheckViolation(sess *BuildSession, emp *model.Employee, date time.Time, assigned string) ViolationResult {
	var result ViolationResult

	if assigned == "" {
		return result
	}

	ranges := emp.AvailabilityFor(int(date.Weekday()))

	switch {
	case len(ranges) == 0:
		result.add("该星期无固定可用时间")
	case containsAllDay(ranges):
		// 全天可用
	case matchesFixedRange(ranges, assigned):
		// 与固定可用时间一致
	case matchesRequest(sess, emp.Code, date, assigned):
		// 与当日希望时间段重叠
	default:
		result.add("班次超出申报的可用时间")
	}

	tr, err := ParseRange(assigned)
	if err != nil {
		result.add(fmt.Sprintf("班次时间段 %q 格式非法", assigned))
		return result
	}

	if sess.Settings.WarnConsecutiveDays && sess.Settings.MaxConsecutiveDays > 0 {
		if run := consecutiveRun(sess, emp.Code, date); run > sess.Settings.MaxConsecutiveDays {
			result.add(fmt.Sprintf("连续工作 %d 天，超过上限 %d 天", run, sess.Settings.MaxConsecutiveDays))
		}
	}

	if sess.Settings.WarnRestHours && sess.Settings.MinRestHours > 0 {
		checkRest(sess, emp.Code, date, tr, &result)
	}

	return result
}

func containsAllDay(ranges []string) bool {
	for _, r := range ranges {
		if r == model.AllDay {
			return true
		}
	}
	return false
}

func matchesFixedRange(ranges []string, assigned string) bool {
	for _, r := range ranges {
		if r == assigned {
			return true
		}
	}
	return false
}

func matchesRequest(sess *BuildSession, code string, date time.Time, assigned string) bool {
	req, ok := sess.RequestFor(code, date)
	if !ok || req.IsOff || req.TimeRange == "" {
		return false
	}
	pref, err := ParseRange(req.TimeRange)
	if err != nil {
		return false
	}
	tr, err := ParseRange(assigned)
	if err != nil {
		return false
	}
	return pref.Overlaps(tr)
}

// consecutiveRun 以 date 为末端的连续出勤天数（回溯至多 consecutiveScanLimit 天）
func consecutiveRun(sess *BuildSession, code string, date time.Time) int {
	run := 1
	for i := 1; i <= consecutiveScanLimit; i++ {
		if _, ok := sess.Assigned(code, date.AddDate(0, 0, -i)); !ok {
			break
		}
		run++
	}
	return run
}

// checkRest 检查与前一日、次日班次之间的休息小时数
func checkRest(sess *BuildSession, code string, date time.Time, tr TimeRange, result *ViolationResult) {
	minRest := float64(sess.Settings.MinRestHours)

	if prev, ok := sess.Assigned(code, date.AddDate(0, 0, -1)); ok {
		if prevTR, err := ParseRange(prev); err == nil {
			if rest := restHours(prevTR.End, tr.Start); rest < minRest {
				result.add(fmt.Sprintf("与前日班次间休息仅 %.1f 小时，低于下限 %d 小时", rest, sess.Settings.MinRestHours))
			}
		}
	}

	if next, ok := sess.Assigned(code, date.AddDate(0, 0, 1)); ok {
		if nextTR, err := ParseRange(next); err == nil {
			if rest := restHours(tr.End, nextTR.Start); rest < minRest {
				result.add(fmt.Sprintf("与次日班次间休息仅 %.1f 小时，低于下限 %d 小时", rest, sess.Settings.MinRestHours))
			}
		}
	}
}

// restHours 前班结束到次班开始的休息小时数
// 次班开始的数值早于前班结束时视为跨午夜，+24h 后求差
func restHours(prevEnd, nextStart int) float64 {
	if nextStart < prevEnd {
		nextStart += 24 * 60
	}
	return float64(nextStart-prevEnd) / 60.0
}
