package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fitclub-admin/internal/domain"
)

type ActorRepo struct{ db *gorm.DB }

func NewActorRepo(db *gorm.DB) *ActorRepo { return &ActorRepo{db: db} }

func (r *ActorRepo) Create(ctx context.Context, a *domain.Actor) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if err != nil && isDupKey(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, a.Username)
	}
	return err
}

func (r *ActorRepo) FindByID(ctx context.Context, id uint) (*domain.Actor, error) {
	var a domain.Actor
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActorRepo) FindByUsername(ctx context.Context, username string) (*domain.Actor, error) {
	var a domain.Actor
	err := r.db.WithContext(ctx).First(&a, "username = ?", username).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActorRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Actor, error) {
	var out []domain.Actor
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("id").Find(&out).Error
	return out, err
}

func (r *ActorRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Actor{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *ActorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Actor{}).Count(&n).Error
	return n, err
}

func (r *ActorRepo) Update(ctx context.Context, a *domain.Actor) error {
	err := r.db.WithContext(ctx).Save(a).Error
	if err != nil && isDupKey(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, a.Username)
	}
	return err
}

func (r *ActorRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Actor{})
	return res.RowsAffected, res.Error
}
