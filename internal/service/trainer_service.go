package service

import (
	"context"
	"fmt"
	"strings"

	"fitclub-admin/internal/domain"
)

type TrainerService struct {
	store domain.Store
}

func NewTrainerService(store domain.Store) *TrainerService {
	return &TrainerService{store: store}
}

func (s *TrainerService) ListTrainers(ctx context.Context) ([]domain.Actor, error) {
	return s.store.Actors().ListByRole(ctx, domain.RoleTrainer)
}

func (s *TrainerService) GetTrainer(ctx context.Context, id uint) (*domain.Actor, error) {
	t, err := actorWithRole(ctx, s.store, id, domain.RoleTrainer)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: trainer %d", domain.ErrNotFound, id)
	}
	return t, nil
}

func (s *TrainerService) AddTrainer(ctx context.Context, in ActorInput) (*domain.Actor, error) {
	a, err := createActor(ctx, s.store, domain.RoleTrainer, in)
	observe("add_trainer", err)
	return a, err
}

// EditTrainer overwrites username and phone. The password is not editable here.
func (s *TrainerService) EditTrainer(ctx context.Context, id uint, username, phone string) (*domain.Actor, error) {
	username, phone = strings.TrimSpace(username), strings.TrimSpace(phone)
	var out *domain.Actor
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		t, err := actorWithRole(ctx, tx, id, domain.RoleTrainer)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: trainer %d", domain.ErrNotFound, id)
		}
		if err := validateProfile(username, phone); err != nil {
			return err
		}
		if username != t.Username {
			other, err := tx.Actors().FindByUsername(ctx, username)
			if err != nil {
				return err
			}
			if other != nil {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, username)
			}
		}
		t.Username, t.Phone = username, phone
		if err := tx.Actors().Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	observe("edit_trainer", err)
	return out, err
}

// DeleteTrainer removes the trainer, every schedule entry they lead and the
// registrations on those entries, all in one transaction.
func (s *TrainerService) DeleteTrainer(ctx context.Context, id uint) error {
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		t, err := actorWithRole(ctx, tx, id, domain.RoleTrainer)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: trainer %d", domain.ErrNotFound, id)
		}
		ids, err := tx.Schedules().IDsByTrainer(ctx, id)
		if err != nil {
			return err
		}
		if _, err := tx.Registrations().DeleteBySchedules(ctx, ids); err != nil {
			return err
		}
		if _, err := tx.Schedules().DeleteByTrainer(ctx, id); err != nil {
			return err
		}
		n, err := tx.Actors().Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: trainer %d", domain.ErrNotFound, id)
		}
		return nil
	})
	observe("delete_trainer", err)
	return err
}
