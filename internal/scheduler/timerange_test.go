package scheduler

import (
	"errors"
	"testing"
)

func mustRange(t *testing.T, s string) TimeRange {
	t.Helper()
	tr, err := ParseRange(s)
	if err != nil {
		t.Fatalf("ParseRange(%q) 失败: %v", s, err)
	}
	return tr
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"24:00", 1440, false},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"09:60", 0, true},
		{"25:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) 期望报错，实际成功", c.in)
			} else if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("ParseClock(%q) 期望 ErrInvalidTimeFormat，实际=%v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) 失败: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) 期望 %d，实际 %d", c.in, c.want, got)
		}
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, s := range []string{"", "09:00", "09:00~17:00", "09:00-25:00", "休み"} {
		if _, err := ParseRange(s); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ParseRange(%q) 期望 ErrInvalidTimeFormat，实际=%v", s, err)
		}
	}
}

func TestContains(t *testing.T) {
	avail := mustRange(t, "09:00-17:00")
	required := mustRange(t, "10:00-14:00")

	if !avail.Contains(required) {
		t.Error("09:00-17:00 应包含 10:00-14:00")
	}
	if required.Contains(avail) {
		t.Error("10:00-14:00 不应包含 09:00-17:00")
	}
	// 边界一致视为包含
	if !avail.Contains(avail) {
		t.Error("区间应包含自身")
	}
}

func TestOverlaps(t *testing.T) {
	a := mustRange(t, "09:00-13:00")
	b := mustRange(t, "12:00-16:00")
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("09:00-13:00 与 12:00-16:00 应重叠")
	}

	// 首尾相接不算重叠（严格不等式）
	c := mustRange(t, "09:00-12:00")
	d := mustRange(t, "12:00-16:00")
	if c.Overlaps(d) || d.Overlaps(c) {
		t.Error("09:00-12:00 与 12:00-16:00 首尾相接，不应判定为重叠")
	}
}

func TestHours(t *testing.T) {
	tr := mustRange(t, "09:30-16:00")
	if tr.Hours() != 6.5 {
		t.Errorf("期望 6.5 小时，实际 %v", tr.Hours())
	}
}
