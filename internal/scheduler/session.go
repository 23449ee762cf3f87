package scheduler

import (
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

const dateLayout = "2006-01-02"

// DateKey 将日期格式化为排班网格的键
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// Settings 排班引擎开关与阈值（来自排班条件配置）
type Settings struct {
	RespectOffRequests     bool
	PrioritizeMainBusiness bool
	BalanceWorkload        bool
	RespectTimePreferences bool
	WarnConsecutiveDays    bool
	WarnRestHours          bool
	MaxConsecutiveDays     int
	MinRestHours           int
}

// SettingsFromCondition 从排班条件记录构造引擎设置
func SettingsFromCondition(c *model.ShiftCondition) Settings {
	return Settings{
		RespectOffRequests:     c.RespectOffRequests,
		PrioritizeMainBusiness: c.PrioritizeMainBusiness,
		BalanceWorkload:        c.BalanceWorkload,
		RespectTimePreferences: c.RespectTimePreferences,
		WarnConsecutiveDays:    c.WarnConsecutiveDays,
		WarnRestHours:          c.WarnRestHours,
		MaxConsecutiveDays:     c.MaxConsecutiveDays,
		MinRestHours:           c.MinRestHours,
	}
}

// Request 某员工某日的出勤希望
// IsOff 表示休假希望；TimeRange 非空表示希望时间段；二者皆空不会出现
type Request struct {
	IsOff     bool
	TimeRange string // "HH:MM-HH:MM"，无希望时为空串
}

// Workload 员工当月累计工作量
type Workload struct {
	TotalHours   float64
	TotalDays    int
	LastWorkDate time.Time
}

// BuildSession 单次月度排班会话
// 网格、希望、工作量均为会话内状态，由调用方显式传递，
// 不存在进程级共享，可并行构建不同会话。
type BuildSession struct {
	// Grid 排班网格：员工编号 → 日期键 → 班次时间段
	// 不变式：每 (员工, 日期) 至多一条
	Grid map[string]map[string]string

	// Requests 出勤希望：员工编号 → 日期键 → 希望
	Requests map[string]map[string]Request

	// Workload 员工编号 → 累计工作量
	Workload map[string]*Workload

	Settings Settings
}

// NewBuildSession 创建空白排班会话
func NewBuildSession(settings Settings) *BuildSession {
	return &BuildSession{
		Grid:     make(map[string]map[string]string),
		Requests: make(map[string]map[string]Request),
		Workload: make(map[string]*Workload),
		Settings: settings,
	}
}

// Assigned 返回员工在指定日期的班次（若有）
func (s *BuildSession) Assigned(code string, date time.Time) (string, bool) {
	row, ok := s.Grid[code]
	if !ok {
		return "", false
	}
	rng, ok := row[DateKey(date)]
	return rng, ok && rng != ""
}

// Assign 将班次写入网格并累加工作量
func (s *BuildSession) Assign(code string, date time.Time, tr TimeRange, rangeText string) {
	row, ok := s.Grid[code]
	if !ok {
		row = make(map[string]string)
		s.Grid[code] = row
	}
	row[DateKey(date)] = rangeText

	w := s.workloadFor(code)
	w.TotalHours += tr.Hours()
	w.TotalDays++
	if date.After(w.LastWorkDate) {
		w.LastWorkDate = date
	}
}

// SetAssigned 仅写入网格，不更新工作量（用于加载已持久化的班次）
func (s *BuildSession) SetAssigned(code string, date time.Time, rangeText string) {
	row, ok := s.Grid[code]
	if !ok {
		row = make(map[string]string)
		s.Grid[code] = row
	}
	row[DateKey(date)] = rangeText
}

// SetRequest 写入出勤希望
func (s *BuildSession) SetRequest(code string, date time.Time, req Request) {
	row, ok := s.Requests[code]
	if !ok {
		row = make(map[string]Request)
		s.Requests[code] = row
	}
	row[DateKey(date)] = req
}

// RequestFor 返回员工在指定日期的出勤希望（若有）
func (s *BuildSession) RequestFor(code string, date time.Time) (Request, bool) {
	row, ok := s.Requests[code]
	if !ok {
		return Request{}, false
	}
	req, ok := row[DateKey(date)]
	return req, ok
}

func (s *BuildSession) workloadFor(code string) *Workload {
	w, ok := s.Workload[code]
	if !ok {
		w = &Workload{}
		s.Workload[code] = w
	}
	return w
}
