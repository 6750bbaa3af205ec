package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitclub-admin/internal/core/auth"
	"fitclub-admin/internal/core/session"
	"fitclub-admin/internal/domain"
	"fitclub-admin/pkg/utils"
)

type AuthService struct {
	store    domain.Store
	sessions session.Store
	jwt      *auth.JWTer
	ttl      time.Duration
}

func NewAuthService(store domain.Store, sessions session.Store, jwter *auth.JWTer, ttl time.Duration) *AuthService {
	return &AuthService{store: store, sessions: sessions, jwt: jwter, ttl: ttl}
}

type Login struct {
	Actor     *domain.Actor
	Token     string
	ExpiresAt time.Time
}

// Authenticate never says which half of the credentials was wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Login, error) {
	login, err := s.authenticate(ctx, strings.TrimSpace(username), password)
	observe("authenticate", err)
	return login, err
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (*Login, error) {
	a, err := s.store.Actors().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if a == nil {
		utils.BurnPasswordCheck(password)
		return nil, domain.ErrAuthFailure
	}
	if !utils.CheckPassword(password, a.PasswordHash) {
		return nil, domain.ErrAuthFailure
	}

	sess := session.New(a.ID, a.Role.String(), s.ttl)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	tok, err := s.jwt.Issue(sess.ID, a.ID, a.Role.String(), sess.ExpiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Login{Actor: a, Token: tok, ExpiresAt: sess.ExpiresAt}, nil
}

// CurrentActor resolves a session token to a live actor. Unknown, expired,
// ended or orphaned sessions all yield ErrAuthFailure.
func (s *AuthService) CurrentActor(ctx context.Context, token string) (*domain.Actor, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, domain.ErrAuthFailure
	}
	sess, err := s.sessions.Load(ctx, claims.SID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, domain.ErrAuthFailure
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	a, err := s.store.Actors().FindByID(ctx, sess.ActorID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, domain.ErrAuthFailure
	}
	return a, nil
}

func (s *AuthService) EndSession(ctx context.Context, token string) error {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return domain.ErrAuthFailure
	}
	err = s.sessions.Delete(ctx, claims.SID)
	observe("end_session", err)
	return err
}
