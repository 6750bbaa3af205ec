package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin/internal/domain"
	"fitclub-admin/pkg/utils"
)

func uintStr(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func TestAddTrainer_HashesPassword(t *testing.T) {
	f := newFixture(t)
	tr := f.trainer(t, "trainer1")

	assert.Equal(t, domain.RoleTrainer, tr.Role)
	assert.NotEqual(t, "trainer123", tr.PasswordHash)
	assert.True(t, utils.CheckPassword("trainer123", tr.PasswordHash))
}

func TestAddTrainer_DuplicateUsername(t *testing.T) {
	f := newFixture(t)
	f.trainer(t, "trainer1")

	_, err := f.trainers.AddTrainer(f.ctx, ActorInput{Username: "trainer1", Password: "other", Phone: "1"})
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)

	n, err := f.store.Actors().Count(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAddTrainer_RequiresFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.trainers.AddTrainer(f.ctx, ActorInput{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.trainers.AddTrainer(f.ctx, ActorInput{Username: "t", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditTrainer(t *testing.T) {
	f := newFixture(t)
	tr := f.trainer(t, "trainer1")
	f.trainer(t, "trainer2")

	got, err := f.trainers.EditTrainer(f.ctx, tr.ID, "coach", "+70000000000")
	require.NoError(t, err)
	assert.Equal(t, "coach", got.Username)
	assert.True(t, utils.CheckPassword("trainer123", got.PasswordHash), "password must survive an edit")

	_, err = f.trainers.EditTrainer(f.ctx, tr.ID, "trainer2", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	_, err = f.trainers.EditTrainer(f.ctx, 999, "x", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c := f.client(t, "client1")
	_, err = f.trainers.EditTrainer(f.ctx, c.ID, "x", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTrainer_CascadesSchedules(t *testing.T) {
	f := newFixture(t)
	yoga := f.section(t, "Yoga", 1500, 15)
	t1 := f.trainer(t, "trainer1")
	t2 := f.trainer(t, "trainer2")
	c1 := f.client(t, "client1")

	e1 := f.entry(t, yoga, t1, "2025-03-01T18:00", "60")
	f.entry(t, yoga, t1, "2025-03-02T18:00", "60")
	kept := f.entry(t, yoga, t2, "2025-03-03T18:00", "60")
	_, err := f.registrations.CreateRegistration(f.ctx, c1.ID, e1.ID)
	require.NoError(t, err)

	require.NoError(t, f.trainers.DeleteTrainer(f.ctx, t1.ID))

	_, err = f.trainers.GetTrainer(f.ctx, t1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	left, err := f.schedules.ListSchedule(f.ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)

	page, err := f.registrations.Overview(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, page.Registrations)

	assert.ErrorIs(t, f.trainers.DeleteTrainer(f.ctx, t1.ID), domain.ErrNotFound)
}
