package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Employee       EmployeeRepository
	BusinessType   BusinessTypeRepository
	Event          EventRepository
	MonthlyEvent   MonthlyEventRepository
	Shift          ShiftRepository
	ShiftStatus    ShiftStatusRepository
	ShiftRequest   ShiftRequestRepository
	ShiftCondition ShiftConditionRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:       NewEmployeeRepo(db),
		BusinessType:   NewBusinessTypeRepo(db),
		Event:          NewEventRepo(db),
		MonthlyEvent:   NewMonthlyEventRepo(db),
		Shift:          NewShiftRepo(db),
		ShiftStatus:    NewShiftStatusRepo(db),
		ShiftRequest:   NewShiftRequestRepo(db),
		ShiftCondition: NewShiftConditionRepo(db),
	}
}
