package service

import (
	"context"

	"fitclub-admin/internal/domain"
)

// SectionService is read-only; sections only come from seeding.
type SectionService struct {
	store domain.Store
}

func NewSectionService(store domain.Store) *SectionService {
	return &SectionService{store: store}
}

func (s *SectionService) ListSections(ctx context.Context) ([]domain.Section, error) {
	return s.store.Sections().List(ctx)
}
