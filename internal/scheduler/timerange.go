package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTimeFormat 时间字符串格式非法
var ErrInvalidTimeFormat = errors.New("时间格式非法")

// TimeRange 一段以分钟偏移表示的时间区间
// 不处理跨午夜区间（end < start 不做特殊处理）
type TimeRange struct {
	Start int // 距 00:00 的分钟数
	End   int
}

// ParseClock 将 "HH:MM" 转换为分钟偏移
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, err := parseTwoDigits(s[0:2])
	if err != nil || h > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	m, err := parseTwoDigits(s[3:5])
	if err != nil || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*60 + m, nil
}

func parseTwoDigits(s string) (int, error) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, ErrInvalidTimeFormat
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}

// ParseRange 解析 "HH:MM-HH:MM" 格式的时间段字符串
func ParseRange(s string) (TimeRange, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	startMin, err := ParseClock(start)
	if err != nil {
		return TimeRange{}, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: startMin, End: endMin}, nil
}

// Overlaps 判断两区间是否重叠（严格不等式：首尾相接不算重叠）
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && r.End > o.Start
}

// Contains 判断 o 是否完整落在 r 之内
func (r TimeRange) Contains(o TimeRange) bool {
	return o.Start >= r.Start && o.End <= r.End
}

// Minutes 区间长度（分钟）
func (r TimeRange) Minutes() int {
	return r.End - r.Start
}

// Hours 区间长度（小时）
func (r TimeRange) Hours() float64 {
	return float64(r.Minutes()) / 60.0
}
