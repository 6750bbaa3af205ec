package service

import (
	"context"

	"fitclub-admin/internal/domain"
)

// Report. EstimatedIncome on each section is registrations times list
// price; it is not derived from, and never added to, TotalPayments.
type Report struct {
	TotalPayments float64              `json:"total_payments"`
	TotalClients  int64                `json:"total_clients"`
	Sections      []domain.SectionStat `json:"section_data"`
}

type AnalyticsService struct {
	store domain.Store
}

func NewAnalyticsService(store domain.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Report reads all three aggregates in one transaction.
func (s *AnalyticsService) Report(ctx context.Context) (*Report, error) {
	var out Report
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		var err error
		if out.TotalPayments, err = tx.Payments().Total(ctx); err != nil {
			return err
		}
		if out.TotalClients, err = tx.Actors().CountByRole(ctx, domain.RoleClient); err != nil {
			return err
		}
		out.Sections, err = tx.Sections().Stats(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out.Sections == nil {
		out.Sections = []domain.SectionStat{}
	}
	return &out, nil
}
