package scheduler

import (
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// EligibleEmployees 返回指定日期可出勤的员工，保持入参顺序，无副作用。
// 判定条件：
//  1. 当天星期有固定可用时间
//  2. 启用「尊重休假希望」时，当日无休假希望
//  3. 声明了周上限时，目标日所在 ISO 周（周一起始）内已排天数未达上限
func EligibleEmployees(sess *BuildSession, roster []model.Employee, date time.Time) []model.Employee {
	weekday := int(date.Weekday())

	eligible := make([]model.Employee, 0, len(roster))
	for _, emp := range roster {
		if len(emp.AvailabilityFor(weekday)) == 0 {
			continue
		}

		if sess.Settings.RespectOffRequests {
			if req, ok := sess.RequestFor(emp.Code, date); ok && req.IsOff {
				continue
			}
		}

		if emp.MaxDaysPerWeek > 0 &&
			assignedDaysInWeek(sess, emp.Code, date) >= emp.MaxDaysPerWeek {
			continue
		}

		eligible = append(eligible, emp)
	}
	return eligible
}

// assignedDaysInWeek 统计目标日所在 ISO 周内已排班的天数
func assignedDaysInWeek(sess *BuildSession, code string, date time.Time) int {
	monday := isoWeekStart(date)
	count := 0
	for i := 0; i < 7; i++ {
		if _, ok := sess.Assigned(code, monday.AddDate(0, 0, i)); ok {
			count++
		}
	}
	return count
}

// isoWeekStart 返回日期所在 ISO 周的周一
func isoWeekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
