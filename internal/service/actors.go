package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"fitclub-admin/internal/domain"
	"fitclub-admin/pkg/utils"
)

const (
	maxUsernameLen = 50
	maxPhoneLen    = 20
)

// ActorInput is the form shared by trainer and client creation.
type ActorInput struct {
	Username string
	Password string
	Phone    string
}

func (in ActorInput) normalize() (ActorInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validateProfile(in.Username, in.Phone); err != nil {
		return in, err
	}
	if in.Password == "" {
		return in, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	return in, nil
}

func validateProfile(username, phone string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return fmt.Errorf("%w: username longer than %d characters", domain.ErrInvalidInput, maxUsernameLen)
	}
	if utf8.RuneCountInString(phone) > maxPhoneLen {
		return fmt.Errorf("%w: phone longer than %d characters", domain.ErrInvalidInput, maxPhoneLen)
	}
	return nil
}

// createActor hashes outside the transaction; bcrypt is slow and needs no lock.
func createActor(ctx context.Context, store domain.Store, role domain.Role, in ActorInput) (*domain.Actor, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	a := &domain.Actor{Username: in.Username, PasswordHash: hash, Role: role, Phone: in.Phone}
	err = store.Atomic(ctx, func(s domain.Store) error {
		existing, err := s.Actors().FindByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, in.Username)
		}
		return s.Actors().Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// actorWithRole returns (nil, nil) when id is unknown or has another role.
func actorWithRole(ctx context.Context, s domain.Store, id uint, role domain.Role) (*domain.Actor, error) {
	a, err := s.Actors().FindByID(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	if a.Role != role {
		return nil, nil
	}
	return a, nil
}
