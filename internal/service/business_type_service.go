package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/dto"
	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
	"github.com/nishida-sj/shift-management-system-sub000/internal/repository"
)

var (
	ErrBusinessTypeNotFound = errors.New("业务种别不存在")
	ErrBusinessTypeExists   = errors.New("业务种别代码已存在")
	ErrBusinessTypeInUse    = errors.New("业务种别仍被员工分配，无法删除")
)

// BusinessTypeService 业务种别管理业务接口
type BusinessTypeService interface {
	Create(ctx context.Context, req *dto.CreateBusinessTypeRequest) (*model.BusinessType, error)
	List(ctx context.Context) ([]model.BusinessType, error)
	Update(ctx context.Context, code string, req *dto.UpdateBusinessTypeRequest) (*model.BusinessType, error)
	Delete(ctx context.Context, code string) error
	Reorder(ctx context.Context, req *dto.ReorderBusinessTypesRequest) error
}

type businessTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBusinessTypeService 创建 BusinessTypeService 实例
func NewBusinessTypeService(repo *repository.Repository, logger *zap.Logger) BusinessTypeService {
	return &businessTypeService{repo: repo, logger: logger}
}

func (s *businessTypeService) Create(ctx context.Context, req *dto.CreateBusinessTypeRequest) (*model.BusinessType, error) {
	if _, err := s.repo.BusinessType.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrBusinessTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bt := &model.BusinessType{
		Code:       req.Code,
		Name:       req.Name,
		BuildOrder: req.BuildOrder,
	}
	if bt.BuildOrder == 0 {
		bt.BuildOrder = model.DefaultBuildOrder
	}

	if err := s.repo.BusinessType.Create(ctx, bt); err != nil {
		s.logger.Error("创建业务种别失败", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}
	return bt, nil
}

func (s *businessTypeService) List(ctx context.Context) ([]model.BusinessType, error) {
	return s.repo.BusinessType.List(ctx)
}

func (s *businessTypeService) Update(ctx context.Context, code string, req *dto.UpdateBusinessTypeRequest) (*model.BusinessType, error) {
	if _, err := s.repo.BusinessType.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessTypeNotFound
		}
		return nil, err
	}

	bt := &model.BusinessType{
		Code:       code,
		Name:       req.Name,
		BuildOrder: req.BuildOrder,
	}
	if err := s.repo.BusinessType.Update(ctx, bt); err != nil {
		return nil, err
	}
	return s.repo.BusinessType.GetByCode(ctx, code)
}

func (s *businessTypeService) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.BusinessType.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBusinessTypeNotFound
		}
		return err
	}

	refs, err := s.repo.BusinessType.CountRoleRefs(ctx, code)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrBusinessTypeInUse
	}

	return s.repo.BusinessType.Delete(ctx, code)
}

func (s *businessTypeService) Reorder(ctx context.Context, req *dto.ReorderBusinessTypesRequest) error {
	for code := range req.Orders {
		if _, err := s.repo.BusinessType.GetByCode(ctx, code); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBusinessTypeNotFound
			}
			return err
		}
	}
	return s.repo.BusinessType.UpdateBuildOrders(ctx, req.Orders)
}
