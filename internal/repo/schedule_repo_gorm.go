package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitclub-admin/internal/domain"
)

type ScheduleRepo struct{ db *gorm.DB }

func NewScheduleRepo(db *gorm.DB) *ScheduleRepo { return &ScheduleRepo{db: db} }

// Start times are written in UTC. Some drivers keep the offset in the stored
// text, and ordering by starts_at must match ordering by instant.
func (r *ScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	s.StartsAt = s.StartsAt.UTC()
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *ScheduleRepo) FindByID(ctx context.Context, id uint) (*domain.Schedule, error) {
	var s domain.Schedule
	err := r.db.WithContext(ctx).Preload("Section").Preload("Trainer").First(&s, "id = ?", id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepo) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Schedule, error) {
	var s domain.Schedule
	err := forUpdate(r.db.WithContext(ctx)).First(&s, "id = ?", id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// forUpdate adds SELECT ... FOR UPDATE. The sqlite dialector drops the
// clause; a write transaction there already excludes other writers.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// ListOrdered sorts by start time; ties fall back to id so the order is total.
func (r *ScheduleRepo) ListOrdered(ctx context.Context) ([]domain.Schedule, error) {
	var out []domain.Schedule
	err := r.db.WithContext(ctx).
		Preload("Section").Preload("Trainer").
		Order("starts_at ASC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ScheduleRepo) IDsByTrainer(ctx context.Context, trainerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("trainer_id = ?", trainerID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ScheduleRepo) Update(ctx context.Context, s *domain.Schedule) error {
	s.StartsAt = s.StartsAt.UTC()
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *ScheduleRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Schedule{})
	return res.RowsAffected, res.Error
}

func (r *ScheduleRepo) DeleteByTrainer(ctx context.Context, trainerID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("trainer_id = ?", trainerID).Delete(&domain.Schedule{})
	return res.RowsAffected, res.Error
}
