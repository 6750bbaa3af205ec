package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/repo"
	"fitclub-admin/internal/repo/repotest"
)

type fixture struct {
	ctx   context.Context
	store *repo.Store

	trainers      *TrainerService
	schedules     *ScheduleService
	registrations *RegistrationService
	payments      *PaymentService
	analytics     *AnalyticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repotest.NewStore(t)
	return &fixture{
		ctx:           context.Background(),
		store:         store,
		trainers:      NewTrainerService(store),
		schedules:     NewScheduleService(store, time.UTC),
		registrations: NewRegistrationService(store),
		payments:      NewPaymentService(store),
		analytics:     NewAnalyticsService(store),
	}
}

func (f *fixture) section(t *testing.T, name string, price float64, capacity int) *domain.Section {
	t.Helper()
	s := &domain.Section{Name: name, Price: price, Capacity: capacity}
	require.NoError(t, f.store.Sections().Create(f.ctx, s))
	return s
}

func (f *fixture) trainer(t *testing.T, name string) *domain.Actor {
	t.Helper()
	a, err := f.trainers.AddTrainer(f.ctx, ActorInput{Username: name, Password: "trainer123", Phone: "+79997778899"})
	require.NoError(t, err)
	return a
}

func (f *fixture) client(t *testing.T, name string) *domain.Actor {
	t.Helper()
	a, err := f.registrations.CreateClient(f.ctx, ActorInput{Username: name, Password: "client123"})
	require.NoError(t, err)
	return a
}

func (f *fixture) entry(t *testing.T, sec *domain.Section, tr *domain.Actor, at string, minutes string) *domain.Schedule {
	t.Helper()
	e, err := f.schedules.CreateSchedule(f.ctx, ScheduleInput{
		SectionID: uintStr(sec.ID), TrainerID: uintStr(tr.ID), Datetime: at, Duration: minutes,
	})
	require.NoError(t, err)
	return e
}
