package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	"github.com/nishida-sj/shift-management-system-sub000/internal/scheduler"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoShifts     = errors.New("该月暂无排班")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出：员工 × 日期的月度网格，违规单元格标红
//   - ICS 导出：单个员工当月班次的日历文件
//   - 均以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportExcel 导出月度排班网格为 Excel
	ExportExcel(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
	// ExportICS 导出指定员工当月班次为 ICS 日历
	ExportICS(ctx context.Context, code string, year, month int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// buildSession 构建违规判定用会话（设置 + 当月希望 + 当月班次）
func (s *exportService) buildSession(ctx context.Context, year, month int) (*scheduler.BuildSession, error) {
	cond, err := s.repo.ShiftCondition.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cond = nil
	}
	var settings scheduler.Settings
	if cond != nil {
		settings = scheduler.SettingsFromCondition(cond)
	}
	sess := scheduler.NewBuildSession(settings)

	requests, err := s.repo.ShiftRequest.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		date := time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
		req := scheduler.Request{IsOff: r.IsOff}
		if !r.IsOff && r.StartTime != "" && r.EndTime != "" {
			req.TimeRange = r.StartTime + "-" + r.EndTime
		}
		sess.SetRequest(r.EmployeeCode, date, req)
	}
	return sess, nil
}

func (s *exportService) ExportExcel(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	shifts, err := s.repo.Shift.ListByMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("查询排班失败", zap.Error(err))
		return nil, "", err
	}
	if len(shifts) == 0 {
		return nil, "", ErrExportNoShifts
	}

	roster, err := s.repo.Employee.List(ctx)
	if err != nil {
		return nil, "", err
	}
	sess, err := s.buildSession(ctx, year, month)
	if err != nil {
		return nil, "", err
	}
	for _, sh := range shifts {
		sess.SetAssigned(sh.EmployeeCode, sh.WorkDate, sh.TimeRange)
	}

	// 索引: "code:day" → 班次
	index := make(map[string]string)
	for _, sh := range shifts {
		index[fmt.Sprintf("%s:%d", sh.EmployeeCode, sh.WorkDate.Day())] = sh.TimeRange
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "排班表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	lastCol, _ := excelize.ColumnNumberToName(2 + daysInMonth)
	f.SetColWidth(sheetName, "C", lastCol, 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	violationStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%d年%d月 — 排班表", year, month))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "员工编号")
	f.SetCellValue(sheetName, cell("B", row), "姓名")
	for day := 1; day <= daysInMonth; day++ {
		f.SetCellValue(sheetName, cell(colName(1+day), row), fmt.Sprintf("%d日", day))
	}

	// 数据行：违规单元格标红
	row = 3
	for i := range roster {
		emp := &roster[i]
		f.SetCellValue(sheetName, cell("A", row), emp.Code)
		f.SetCellValue(sheetName, cell("B", row), emp.Name)

		for day := 1; day <= daysInMonth; day++ {
			rangeText, ok := index[fmt.Sprintf("%s:%d", emp.Code, day)]
			if !ok {
				continue
			}
			cellRef := cell(colName(1+day), row)
			f.SetCellValue(sheetName, cellRef, rangeText)

			date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if verdict := scheduler.CheckViolation(sess, emp, date, rangeText); verdict.Violation {
				f.SetCellStyle(sheetName, cellRef, cellRef, violationStyle)
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("排班表_%d年%d月.xlsx", year, month)
	return buf, filename, nil
}

func (s *exportService) ExportICS(ctx context.Context, code string, year, month int) (*bytes.Buffer, string, error) {
	employee, err := s.repo.Employee.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEmployeeNotFound
		}
		return nil, "", err
	}

	shifts, err := s.repo.Shift.ListByEmployeeAndMonth(ctx, code, year, month)
	if err != nil {
		return nil, "", err
	}
	if len(shifts) == 0 {
		return nil, "", ErrExportNoShifts
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shift-management-system//JP")

	for _, sh := range shifts {
		tr, err := scheduler.ParseRange(sh.TimeRange)
		if err != nil {
			continue // 无法解析的班次不导出
		}

		start := sh.WorkDate.Add(time.Duration(tr.Start) * time.Minute)
		end := sh.WorkDate.Add(time.Duration(tr.End) * time.Minute)

		uid := fmt.Sprintf("%s-%s@shift-management-system", code, scheduler.DateKey(sh.WorkDate))
		evt := cal.AddEvent(uid)
		evt.SetCreatedTime(time.Now())
		evt.SetDtStampTime(time.Now())
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(fmt.Sprintf("出勤 %s (%s)", sh.TimeRange, employee.Name))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("shifts_%s_%d-%02d.ics", code, year, month)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
