package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// EventRepository 行事数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	ReplaceRequirements(ctx context.Context, eventID string, reqs []model.EventRequirement) error
	CountMonthlyRefs(ctx context.Context, eventID string) (int64, error)
}

// MonthlyEventRepository 月度行事分配数据访问接口
type MonthlyEventRepository interface {
	Upsert(ctx context.Context, me *model.MonthlyEvent) error
	ListByMonth(ctx context.Context, year, month int) ([]model.MonthlyEvent, error)
	DeleteByDate(ctx context.Context, date time.Time) error
}

// ── Event Repository 实现 ──

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("event_id = ?", event.EventID).
		Update("name", event.Name).Error
}

// Delete 删除行事及其人员需求（同一事务）
func (r *eventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).
			Delete(&model.EventRequirement{}).Error; err != nil {
			return err
		}
		return tx.Where("event_id = ?", id).
			Delete(&model.Event{}).Error
	})
}

// ReplaceRequirements 全量替换行事的人员需求
func (r *eventRepo) ReplaceRequirements(ctx context.Context, eventID string, reqs []model.EventRequirement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).
			Delete(&model.EventRequirement{}).Error; err != nil {
			return err
		}
		if len(reqs) == 0 {
			return nil
		}
		return tx.Create(&reqs).Error
	})
}

// CountMonthlyRefs 统计月度日历仍引用该行事的天数，用于删除前检查
func (r *eventRepo) CountMonthlyRefs(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MonthlyEvent{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

// ── MonthlyEvent Repository 实现 ──

type monthlyEventRepo struct {
	db *gorm.DB
}

// NewMonthlyEventRepo 创建 MonthlyEventRepository 实例
func NewMonthlyEventRepo(db *gorm.DB) MonthlyEventRepository {
	return &monthlyEventRepo{db: db}
}

// Upsert 为日期分配行事；已分配则覆盖（每个日期至多一个行事）
func (r *monthlyEventRepo) Upsert(ctx context.Context, me *model.MonthlyEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_date = ?", me.EventDate).
			Delete(&model.MonthlyEvent{}).Error; err != nil {
			return err
		}
		return tx.Create(me).Error
	})
}

func (r *monthlyEventRepo) ListByMonth(ctx context.Context, year, month int) ([]model.MonthlyEvent, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var items []model.MonthlyEvent
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Requirements", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("event_date >= ? AND event_date < ?", start, end).
		Order("event_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *monthlyEventRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("event_date = ?", date).
		Delete(&model.MonthlyEvent{}).Error
}
