package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/repo/repotest"
	"fitclub-admin/pkg/utils"
)

func TestRunSeedsOnce(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewStore(t)

	res, err := Run(ctx, store, time.UTC)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, Result{Actors: 14, Sections: 12, Schedules: 20}, res)

	trainers, err := store.Actors().ListByRole(ctx, domain.RoleTrainer)
	require.NoError(t, err)
	require.Len(t, trainers, 2)
	assert.True(t, utils.CheckPassword("trainer123", trainers[0].PasswordHash))

	admin, err := store.Actors().FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	sched, err := store.Schedules().ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, sched, 20)
	assert.True(t, sched[0].StartsAt.Equal(time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "trainer1", sched[0].Trainer.Username)
	assert.Equal(t, "Йога", sched[0].Section.Name)

	again, err := Run(ctx, store, time.UTC)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	n, err := store.Actors().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(14), n)
}
