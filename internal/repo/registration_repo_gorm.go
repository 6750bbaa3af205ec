package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitclub-admin/internal/domain"
)

type RegistrationRepo struct{ db *gorm.DB }

func NewRegistrationRepo(db *gorm.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

func (r *RegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(reg).Error
	if err != nil && isDupKey(err) {
		return fmt.Errorf("%w: client %d, schedule %d", domain.ErrAlreadyRegistered, reg.ClientID, reg.ScheduleID)
	}
	return err
}

func (r *RegistrationRepo) FindByID(ctx context.Context, id uint) (*domain.Registration, error) {
	var reg domain.Registration
	err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) List(ctx context.Context) ([]domain.Registration, error) {
	var out []domain.Registration
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Schedule.Section").
		Preload("Schedule.Trainer").
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *RegistrationRepo) Exists(ctx context.Context, clientID, scheduleID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Registration{}).
		Where("client_id = ? AND schedule_id = ?", clientID, scheduleID).
		Count(&n).Error
	return n > 0, err
}

func (r *RegistrationRepo) CountBySchedule(ctx context.Context, scheduleID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Registration{}).
		Where("schedule_id = ?", scheduleID).Count(&n).Error
	return n, err
}

func (r *RegistrationRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Registration{})
	return res.RowsAffected, res.Error
}

func (r *RegistrationRepo) DeleteBySchedules(ctx context.Context, scheduleIDs []uint) (int64, error) {
	if len(scheduleIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("schedule_id IN ?", scheduleIDs).Delete(&domain.Registration{})
	return res.RowsAffected, res.Error
}
