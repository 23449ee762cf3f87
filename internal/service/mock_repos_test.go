package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
	pkgerrors "github.com/nishida-sj/shift-management-system-sub000/pkg/errors"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee // code → employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = "emp-" + employee.Code
	}
	m.employees[employee.Code] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByCode(_ context.Context, code string) (*model.Employee, error) {
	if e, ok := m.employees[code]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	existing, ok := m.employees[employee.Code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = employee.Name
	existing.IsAdmin = employee.IsAdmin
	existing.Priority = employee.Priority
	existing.MaxHoursPerDay = employee.MaxHoursPerDay
	existing.MaxDaysPerWeek = employee.MaxDaysPerWeek
	existing.DisplayOrder = employee.DisplayOrder
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, code string) error {
	delete(m.employees, code)
	return nil
}

func (m *mockEmployeeRepo) ReplaceRoles(_ context.Context, code string, roles []model.EmployeeRole) error {
	if e, ok := m.employees[code]; ok {
		e.Roles = roles
	}
	return nil
}

func (m *mockEmployeeRepo) ReplaceAvailabilities(_ context.Context, code string, avails []model.WeeklyAvailability) error {
	if e, ok := m.employees[code]; ok {
		e.Availabilities = avails
	}
	return nil
}

func (m *mockEmployeeRepo) UpdatePassword(_ context.Context, code, passwordHash string) error {
	if e, ok := m.employees[code]; ok {
		e.PasswordHash = passwordHash
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock BusinessTypeRepository ──

type mockBusinessTypeRepo struct {
	types    map[string]*model.BusinessType // code → type
	roleRefs map[string]int64               // code → 分配该业务的员工数
}

func newMockBusinessTypeRepo() *mockBusinessTypeRepo {
	return &mockBusinessTypeRepo{
		types:    make(map[string]*model.BusinessType),
		roleRefs: make(map[string]int64),
	}
}

func (m *mockBusinessTypeRepo) Create(_ context.Context, bt *model.BusinessType) error {
	if bt.BusinessTypeID == "" {
		bt.BusinessTypeID = "bt-" + bt.Code
	}
	m.types[bt.Code] = bt
	return nil
}

func (m *mockBusinessTypeRepo) GetByCode(_ context.Context, code string) (*model.BusinessType, error) {
	if bt, ok := m.types[code]; ok {
		return bt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBusinessTypeRepo) List(_ context.Context) ([]model.BusinessType, error) {
	var result []model.BusinessType
	for _, bt := range m.types {
		result = append(result, *bt)
	}
	return result, nil
}

func (m *mockBusinessTypeRepo) Update(_ context.Context, bt *model.BusinessType) error {
	existing, ok := m.types[bt.Code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = bt.Name
	existing.BuildOrder = bt.BuildOrder
	return nil
}

func (m *mockBusinessTypeRepo) Delete(_ context.Context, code string) error {
	delete(m.types, code)
	return nil
}

func (m *mockBusinessTypeRepo) UpdateBuildOrders(_ context.Context, orders map[string]int) error {
	for code, order := range orders {
		if bt, ok := m.types[code]; ok {
			bt.BuildOrder = order
		}
	}
	return nil
}

func (m *mockBusinessTypeRepo) CountRoleRefs(_ context.Context, code string) (int64, error) {
	return m.roleRefs[code], nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events      map[string]*model.Event
	monthlyRefs map[string]int64
	nextID      int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{
		events:      make(map[string]*model.Event),
		monthlyRefs: make(map[string]int64),
	}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if event.EventID == "" {
		m.nextID++
		event.EventID = fmt.Sprintf("ev-%d", m.nextID)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	existing, ok := m.events[event.EventID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = event.Name
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string) error {
	delete(m.events, id)
	return nil
}

func (m *mockEventRepo) ReplaceRequirements(_ context.Context, eventID string, reqs []model.EventRequirement) error {
	if e, ok := m.events[eventID]; ok {
		e.Requirements = reqs
	}
	return nil
}

func (m *mockEventRepo) CountMonthlyRefs(_ context.Context, eventID string) (int64, error) {
	return m.monthlyRefs[eventID], nil
}

// ── Mock MonthlyEventRepository ──

type mockMonthlyEventRepo struct {
	items  map[string]*model.MonthlyEvent // "2006-01-02" → 分配
	events *mockEventRepo                 // 解引用行事用
}

func newMockMonthlyEventRepo(events *mockEventRepo) *mockMonthlyEventRepo {
	return &mockMonthlyEventRepo{
		items:  make(map[string]*model.MonthlyEvent),
		events: events,
	}
}

func (m *mockMonthlyEventRepo) Upsert(_ context.Context, me *model.MonthlyEvent) error {
	m.items[me.EventDate.Format("2006-01-02")] = me
	return nil
}

func (m *mockMonthlyEventRepo) ListByMonth(_ context.Context, year, month int) ([]model.MonthlyEvent, error) {
	var result []model.MonthlyEvent
	for _, me := range m.items {
		if me.EventDate.Year() != year || int(me.EventDate.Month()) != month {
			continue
		}
		item := *me
		if item.Event == nil && m.events != nil {
			if e, ok := m.events.events[item.EventID]; ok {
				item.Event = e
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func (m *mockMonthlyEventRepo) DeleteByDate(_ context.Context, date time.Time) error {
	delete(m.items, date.Format("2006-01-02"))
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts []model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{}
}

func inMonth(date time.Time, year, month int) bool {
	return date.Year() == year && int(date.Month()) == month
}

func (m *mockShiftRepo) ListByMonth(_ context.Context, year, month int) ([]model.Shift, error) {
	var result []model.Shift
	for _, sh := range m.shifts {
		if inMonth(sh.WorkDate, year, month) {
			result = append(result, sh)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) ListByEmployeeAndMonth(_ context.Context, code string, year, month int) ([]model.Shift, error) {
	var result []model.Shift
	for _, sh := range m.shifts {
		if sh.EmployeeCode == code && inMonth(sh.WorkDate, year, month) {
			result = append(result, sh)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) ReplaceMonth(_ context.Context, year, month int, shifts []model.Shift) error {
	var kept []model.Shift
	for _, sh := range m.shifts {
		if !inMonth(sh.WorkDate, year, month) {
			kept = append(kept, sh)
		}
	}
	m.shifts = append(kept, shifts...)
	return nil
}

// ── Mock ShiftStatusRepository ──

type mockShiftStatusRepo struct {
	statuses map[string]*model.ShiftStatus // "year-month" → 状态
}

func newMockShiftStatusRepo() *mockShiftStatusRepo {
	return &mockShiftStatusRepo{statuses: make(map[string]*model.ShiftStatus)}
}

func statusKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

func (m *mockShiftStatusRepo) Create(_ context.Context, status *model.ShiftStatus) error {
	if status.StatusID == "" {
		status.StatusID = "st-" + statusKey(status.Year, status.Month)
	}
	if status.Version == 0 {
		status.Version = 1
	}
	m.statuses[statusKey(status.Year, status.Month)] = status
	return nil
}

func (m *mockShiftStatusRepo) GetByMonth(_ context.Context, year, month int) (*model.ShiftStatus, error) {
	if s, ok := m.statuses[statusKey(year, month)]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftStatusRepo) UpdateStatus(_ context.Context, status *model.ShiftStatus) error {
	existing, ok := m.statuses[statusKey(status.Year, status.Month)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != status.Version {
		return pkgerrors.ErrOptimisticLock
	}
	existing.Status = status.Status
	existing.Version++
	status.Version = existing.Version
	return nil
}

// ── Mock ShiftRequestRepository ──

type mockShiftRequestRepo struct {
	requests []model.ShiftRequest
}

func newMockShiftRequestRepo() *mockShiftRequestRepo {
	return &mockShiftRequestRepo{}
}

func (m *mockShiftRequestRepo) ListByMonth(_ context.Context, year, month int) ([]model.ShiftRequest, error) {
	var result []model.ShiftRequest
	for _, r := range m.requests {
		if r.Year == year && r.Month == month {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockShiftRequestRepo) ListByEmployeeAndMonth(_ context.Context, code string, year, month int) ([]model.ShiftRequest, error) {
	var result []model.ShiftRequest
	for _, r := range m.requests {
		if r.EmployeeCode == code && r.Year == year && r.Month == month {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockShiftRequestRepo) ReplaceMonth(_ context.Context, code string, year, month int, requests []model.ShiftRequest) error {
	var kept []model.ShiftRequest
	for _, r := range m.requests {
		if !(r.EmployeeCode == code && r.Year == year && r.Month == month) {
			kept = append(kept, r)
		}
	}
	m.requests = append(kept, requests...)
	return nil
}

// ── Mock ShiftConditionRepository ──

type mockShiftConditionRepo struct {
	cond *model.ShiftCondition
}

func newMockShiftConditionRepo() *mockShiftConditionRepo {
	return &mockShiftConditionRepo{}
}

func (m *mockShiftConditionRepo) Get(_ context.Context) (*model.ShiftCondition, error) {
	if m.cond == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.cond, nil
}

func (m *mockShiftConditionRepo) Save(_ context.Context, cond *model.ShiftCondition) error {
	m.cond = cond
	return nil
}

// ── 测试用 Repository 聚合 ──

type mockRepos struct {
	employee     *mockEmployeeRepo
	businessType *mockBusinessTypeRepo
	event        *mockEventRepo
	monthlyEvent *mockMonthlyEventRepo
	shift        *mockShiftRepo
	shiftStatus  *mockShiftStatusRepo
	shiftRequest *mockShiftRequestRepo
	condition    *mockShiftConditionRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		employee:     newMockEmployeeRepo(),
		businessType: newMockBusinessTypeRepo(),
		event:        newMockEventRepo(),
		shift:        newMockShiftRepo(),
		shiftStatus:  newMockShiftStatusRepo(),
		shiftRequest: newMockShiftRequestRepo(),
		condition:    newMockShiftConditionRepo(),
	}
	m.monthlyEvent = newMockMonthlyEventRepo(m.event)

	repo := &repository.Repository{
		Employee:       m.employee,
		BusinessType:   m.businessType,
		Event:          m.event,
		MonthlyEvent:   m.monthlyEvent,
		Shift:          m.shift,
		ShiftStatus:    m.shiftStatus,
		ShiftRequest:   m.shiftRequest,
		ShiftCondition: m.condition,
	}
	return repo, m
}
