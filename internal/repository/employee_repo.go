package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByCode(ctx context.Context, code string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, code string) error
	ReplaceRoles(ctx context.Context, code string, roles []model.EmployeeRole) error
	ReplaceAvailabilities(ctx context.Context, code string, avails []model.WeeklyAvailability) error
	UpdatePassword(ctx context.Context, code, passwordHash string) error
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Availabilities").
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByCode(ctx context.Context, code string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Availabilities").
		Where("code = ?", code).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Availabilities").
		Order("display_order ASC, code ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("code = ?", employee.Code).
		Updates(map[string]interface{}{
			"name":              employee.Name,
			"is_admin":          employee.IsAdmin,
			"priority":          employee.Priority,
			"max_hours_per_day": employee.MaxHoursPerDay,
			"max_days_per_week": employee.MaxDaysPerWeek,
			"display_order":     employee.DisplayOrder,
		}).Error
}

// Delete 删除员工及其业务分配、可用时间（同一事务）
func (r *employeeRepo) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_code = ?", code).
			Delete(&model.EmployeeRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_code = ?", code).
			Delete(&model.WeeklyAvailability{}).Error; err != nil {
			return err
		}
		return tx.Where("code = ?", code).
			Delete(&model.Employee{}).Error
	})
}

// ReplaceRoles 全量替换员工的业务分配
func (r *employeeRepo) ReplaceRoles(ctx context.Context, code string, roles []model.EmployeeRole) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_code = ?", code).
			Delete(&model.EmployeeRole{}).Error; err != nil {
			return err
		}
		if len(roles) == 0 {
			return nil
		}
		return tx.Create(&roles).Error
	})
}

// ReplaceAvailabilities 全量替换员工的周固定可用时间
func (r *employeeRepo) ReplaceAvailabilities(ctx context.Context, code string, avails []model.WeeklyAvailability) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_code = ?", code).
			Delete(&model.WeeklyAvailability{}).Error; err != nil {
			return err
		}
		if len(avails) == 0 {
			return nil
		}
		return tx.Create(&avails).Error
	})
}

func (r *employeeRepo) UpdatePassword(ctx context.Context, code, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("code = ?", code).
		Update("password_hash", passwordHash).Error
}
