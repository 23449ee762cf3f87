package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// BusinessTypeRepository 业务种别数据访问接口
type BusinessTypeRepository interface {
	Create(ctx context.Context, bt *model.BusinessType) error
	GetByCode(ctx context.Context, code string) (*model.BusinessType, error)
	List(ctx context.Context) ([]model.BusinessType, error)
	Update(ctx context.Context, bt *model.BusinessType) error
	Delete(ctx context.Context, code string) error
	UpdateBuildOrders(ctx context.Context, orders map[string]int) error
	CountRoleRefs(ctx context.Context, code string) (int64, error)
}

// businessTypeRepo BusinessTypeRepository 的 GORM 实现
type businessTypeRepo struct {
	db *gorm.DB
}

// NewBusinessTypeRepo 创建 BusinessTypeRepository 实例
func NewBusinessTypeRepo(db *gorm.DB) BusinessTypeRepository {
	return &businessTypeRepo{db: db}
}

func (r *businessTypeRepo) Create(ctx context.Context, bt *model.BusinessType) error {
	return r.db.WithContext(ctx).Create(bt).Error
}

func (r *businessTypeRepo) GetByCode(ctx context.Context, code string) (*model.BusinessType, error) {
	var bt model.BusinessType
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&bt).Error
	if err != nil {
		return nil, err
	}
	return &bt, nil
}

func (r *businessTypeRepo) List(ctx context.Context) ([]model.BusinessType, error) {
	var types []model.BusinessType
	err := r.db.WithContext(ctx).
		Order("build_order ASC, code ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *businessTypeRepo) Update(ctx context.Context, bt *model.BusinessType) error {
	return r.db.WithContext(ctx).
		Model(&model.BusinessType{}).
		Where("code = ?", bt.Code).
		Updates(map[string]interface{}{
			"name":        bt.Name,
			"build_order": bt.BuildOrder,
		}).Error
}

func (r *businessTypeRepo) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&model.BusinessType{}).Error
}

// UpdateBuildOrders 批量调整构建顺序（同一事务）
func (r *businessTypeRepo) UpdateBuildOrders(ctx context.Context, orders map[string]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for code, order := range orders {
			if err := tx.Model(&model.BusinessType{}).
				Where("code = ?", code).
				Update("build_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountRoleRefs 统计仍分配该业务的员工数，用于删除前检查
func (r *businessTypeRepo) CountRoleRefs(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.EmployeeRole{}).
		Where("business_type_code = ?", code).
		Count(&count).Error
	return count, err
}
