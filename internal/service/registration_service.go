package service

import (
	"context"
	"fmt"
	"time"

	"fitclub-admin/internal/domain"
)

type RegistrationService struct {
	store domain.Store
	now   func() time.Time
}

func NewRegistrationService(store domain.Store) *RegistrationService {
	return &RegistrationService{store: store, now: time.Now}
}

// RegistrationPage bundles the registration list with the choices for a new one.
type RegistrationPage struct {
	Registrations []domain.Registration `json:"registrations"`
	Clients       []domain.Actor        `json:"clients"`
	Schedules     []domain.Schedule     `json:"schedules"`
}

func (s *RegistrationService) Overview(ctx context.Context) (*RegistrationPage, error) {
	var out RegistrationPage
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		var err error
		if out.Registrations, err = tx.Registrations().List(ctx); err != nil {
			return err
		}
		if out.Clients, err = tx.Actors().ListByRole(ctx, domain.RoleClient); err != nil {
			return err
		}
		out.Schedules, err = tx.Schedules().ListOrdered(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRegistration signs a client up for a schedule entry. A client can
// hold one registration per entry, and an entry holds at most its section's
// capacity.
func (s *RegistrationService) CreateRegistration(ctx context.Context, clientID, scheduleID uint) (*domain.Registration, error) {
	var out *domain.Registration
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		c, err := actorWithRole(ctx, tx, clientID, domain.RoleClient)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: client %d does not exist", domain.ErrInvalidInput, clientID)
		}
		// The row lock serialises concurrent sign-ups for one entry, so the
		// count below cannot go stale before the insert.
		e, err := tx.Schedules().FindByIDForUpdate(ctx, scheduleID)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: schedule %d does not exist", domain.ErrInvalidInput, scheduleID)
		}
		sec, err := tx.Sections().FindByID(ctx, e.SectionID)
		if err != nil {
			return err
		}
		dup, err := tx.Registrations().Exists(ctx, clientID, scheduleID)
		if err != nil {
			return err
		}
		if dup {
			return fmt.Errorf("%w: client %d, schedule %d", domain.ErrAlreadyRegistered, clientID, scheduleID)
		}
		taken, err := tx.Registrations().CountBySchedule(ctx, scheduleID)
		if err != nil {
			return err
		}
		if sec != nil && taken >= int64(sec.Capacity) {
			return fmt.Errorf("%w: %s holds %d", domain.ErrCapacityExceeded, sec.Name, sec.Capacity)
		}
		r := &domain.Registration{ClientID: clientID, ScheduleID: scheduleID, RegisteredAt: s.now()}
		if err := tx.Registrations().Create(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	observe("create_registration", err)
	return out, err
}

func (s *RegistrationService) DeleteRegistration(ctx context.Context, id uint) error {
	n, err := s.store.Registrations().Delete(ctx, id)
	if err == nil && n == 0 {
		err = fmt.Errorf("%w: registration %d", domain.ErrNotFound, id)
	}
	observe("delete_registration", err)
	return err
}

func (s *RegistrationService) CreateClient(ctx context.Context, in ActorInput) (*domain.Actor, error) {
	a, err := createActor(ctx, s.store, domain.RoleClient, in)
	observe("create_client", err)
	return a, err
}

func (s *RegistrationService) ListClients(ctx context.Context) ([]domain.Actor, error) {
	return s.store.Actors().ListByRole(ctx, domain.RoleClient)
}
