package repo

import (
	"context"

	"gorm.io/gorm"

	"fitclub-admin/internal/domain"
)

type SectionRepo struct{ db *gorm.DB }

func NewSectionRepo(db *gorm.DB) *SectionRepo { return &SectionRepo{db: db} }

func (r *SectionRepo) Create(ctx context.Context, s *domain.Section) error {
	if s.Capacity == 0 {
		s.Capacity = domain.DefaultSectionCapacity
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SectionRepo) FindByID(ctx context.Context, id uint) (*domain.Section, error) {
	var s domain.Section
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SectionRepo) List(ctx context.Context) ([]domain.Section, error) {
	var out []domain.Section
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// Stats counts registrations per section through its schedule entries.
// Outer joins keep sections without schedules or registrations at zero.
func (r *SectionRepo) Stats(ctx context.Context) ([]domain.SectionStat, error) {
	var out []domain.SectionStat
	err := r.db.WithContext(ctx).
		Table("sections").
		Select("sections.id AS section_id, sections.name AS name, sections.price AS price, " +
			"COUNT(registrations.id) AS registration_count, " +
			"COUNT(registrations.id) * sections.price AS estimated_income").
		Joins("LEFT JOIN schedules ON schedules.section_id = sections.id").
		Joins("LEFT JOIN registrations ON registrations.schedule_id = schedules.id").
		Group("sections.id, sections.name, sections.price").
		Order("sections.id").
		Scan(&out).Error
	return out, err
}
