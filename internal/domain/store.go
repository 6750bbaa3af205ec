package domain

import "context"

// Repositories return (nil, nil) when a single-row lookup finds nothing.

type ActorRepository interface {
	Create(ctx context.Context, a *Actor) error
	FindByID(ctx context.Context, id uint) (*Actor, error)
	FindByUsername(ctx context.Context, username string) (*Actor, error)
	ListByRole(ctx context.Context, role Role) ([]Actor, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, a *Actor) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type SectionRepository interface {
	Create(ctx context.Context, s *Section) error
	FindByID(ctx context.Context, id uint) (*Section, error)
	List(ctx context.Context) ([]Section, error)
	Stats(ctx context.Context) ([]SectionStat, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, s *Schedule) error
	FindByID(ctx context.Context, id uint) (*Schedule, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	// Associations are not loaded.
	FindByIDForUpdate(ctx context.Context, id uint) (*Schedule, error)
	ListOrdered(ctx context.Context) ([]Schedule, error)
	IDsByTrainer(ctx context.Context, trainerID uint) ([]uint, error)
	Update(ctx context.Context, s *Schedule) error
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteByTrainer(ctx context.Context, trainerID uint) (int64, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, r *Registration) error
	FindByID(ctx context.Context, id uint) (*Registration, error)
	List(ctx context.Context) ([]Registration, error)
	Exists(ctx context.Context, clientID, scheduleID uint) (bool, error)
	CountBySchedule(ctx context.Context, scheduleID uint) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteBySchedules(ctx context.Context, scheduleIDs []uint) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	List(ctx context.Context) ([]Payment, error)
	Total(ctx context.Context) (float64, error)
}

// Store is the persistence boundary handed to every service.
// Atomic runs fn inside one transaction; fn must only use the Store it is given.
type Store interface {
	Actors() ActorRepository
	Sections() SectionRepository
	Schedules() ScheduleRepository
	Registrations() RegistrationRepository
	Payments() PaymentRepository
	Atomic(ctx context.Context, fn func(s Store) error) error
}
