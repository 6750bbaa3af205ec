package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitclub-admin/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).Preload("Client").
		Order("paid_at DESC").Order("id DESC").
		Find(&out).Error
	return out, err
}

// Total is 0 when there are no payments.
func (r *PaymentRepo) Total(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
