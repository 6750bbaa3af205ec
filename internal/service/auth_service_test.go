package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin/internal/core/auth"
	"fitclub-admin/internal/core/session"
	"fitclub-admin/internal/domain"
)

func newAuth(t *testing.T, f *fixture) (*AuthService, *session.MemoryStore) {
	t.Helper()
	sessions := session.NewMemoryStore()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "fitclub-test"}
	return NewAuthService(f.store, sessions, jwter, time.Hour), sessions
}

func TestAuthenticate_StoredCredentials(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuth(t, f)
	tr := f.trainer(t, "trainer1")

	login, err := svc.Authenticate(f.ctx, "trainer1", "trainer123")
	require.NoError(t, err)
	assert.Equal(t, tr.ID, login.Actor.ID)
	assert.NotEmpty(t, login.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), login.ExpiresAt, time.Minute)

	cur, err := svc.CurrentActor(f.ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "trainer1", cur.Username)
	assert.Equal(t, domain.RoleTrainer, cur.Role)
}

func TestAuthenticate_FailuresLookAlike(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuth(t, f)
	f.trainer(t, "trainer1")

	_, wrongPass := svc.Authenticate(f.ctx, "trainer1", "nope")
	_, noUser := svc.Authenticate(f.ctx, "ghost", "trainer123")
	_, empty := svc.Authenticate(f.ctx, "", "")

	for _, err := range []error{wrongPass, noUser, empty} {
		require.ErrorIs(t, err, domain.ErrAuthFailure)
		assert.Equal(t, domain.ErrAuthFailure.Error(), err.Error())
	}
}

func TestEndSession_InvalidatesToken(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuth(t, f)
	f.client(t, "client1")

	login, err := svc.Authenticate(f.ctx, "client1", "client123")
	require.NoError(t, err)
	require.NoError(t, svc.EndSession(f.ctx, login.Token))

	_, err = svc.CurrentActor(f.ctx, login.Token)
	assert.ErrorIs(t, err, domain.ErrAuthFailure)
}

func TestCurrentActor_DeletedActorLosesSession(t *testing.T) {
	f := newFixture(t)
	svc, sessions := newAuth(t, f)
	tr := f.trainer(t, "trainer1")

	login, err := svc.Authenticate(f.ctx, "trainer1", "trainer123")
	require.NoError(t, err)
	require.NoError(t, f.trainers.DeleteTrainer(f.ctx, tr.ID))

	_, err = svc.CurrentActor(f.ctx, login.Token)
	assert.ErrorIs(t, err, domain.ErrAuthFailure)

	claims, err := (&auth.JWTer{Secret: []byte("test-secret"), Issuer: "fitclub-test"}).Parse(login.Token)
	require.NoError(t, err)
	_, err = sessions.Load(context.Background(), claims.SID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestCurrentActor_GarbageToken(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuth(t, f)
	_, err := svc.CurrentActor(f.ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrAuthFailure)
}
