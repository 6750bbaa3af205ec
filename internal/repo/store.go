package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fitclub-admin/internal/domain"
)

// Store binds every repository to one *gorm.DB, which is either the pool or
// an open transaction.
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Actors() domain.ActorRepository               { return &ActorRepo{db: s.db} }
func (s *Store) Sections() domain.SectionRepository           { return &SectionRepo{db: s.db} }
func (s *Store) Schedules() domain.ScheduleRepository         { return &ScheduleRepo{db: s.db} }
func (s *Store) Registrations() domain.RegistrationRepository { return &RegistrationRepo{db: s.db} }
func (s *Store) Payments() domain.PaymentRepository           { return &PaymentRepo{db: s.db} }

func (s *Store) Atomic(ctx context.Context, fn func(domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error { return db.AutoMigrate(domain.Models()...) }

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

func notFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
