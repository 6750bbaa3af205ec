package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"fitclub-admin/internal/domain"
)

const maxDescriptionLen = 200

type PaymentInput struct {
	ClientID    uint
	Amount      float64
	Description string
}

// PaymentService records payments. Nothing is charged; there is no gateway.
type PaymentService struct {
	store domain.Store
	now   func() time.Time
}

func NewPaymentService(store domain.Store) *PaymentService {
	return &PaymentService{store: store, now: time.Now}
}

func (s *PaymentService) RecordPayment(ctx context.Context, in PaymentInput) (*domain.Payment, error) {
	in.Description = strings.TrimSpace(in.Description)
	var out *domain.Payment
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		if in.Amount < 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
			return fmt.Errorf("%w: amount must be a non-negative number", domain.ErrInvalidInput)
		}
		if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
			return fmt.Errorf("%w: description longer than %d characters", domain.ErrInvalidInput, maxDescriptionLen)
		}
		c, err := actorWithRole(ctx, tx, in.ClientID, domain.RoleClient)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: client %d does not exist", domain.ErrInvalidInput, in.ClientID)
		}
		p := &domain.Payment{ClientID: in.ClientID, Amount: in.Amount, PaidAt: s.now(), Description: in.Description}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	observe("record_payment", err)
	return out, err
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.store.Payments().List(ctx)
}
