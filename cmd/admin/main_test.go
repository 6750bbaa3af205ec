package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/repo/repotest"
	"fitclub-admin/pkg/utils"
)

func TestCreateStaff(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewStore(t)

	a, err := createStaff(ctx, store, "boss", "s3cret", "hr", "+79990001122")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, a.Role)

	got, err := store.Actors().FindByUsername(ctx, "boss")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, utils.CheckPassword("s3cret", got.PasswordHash))

	_, err = createStaff(ctx, store, "boss", "x", "crm", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestCreateStaffRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewStore(t)

	for _, tc := range []struct{ user, pass, role string }{
		{"x", "y", "owner"},
		{"x", "y", "client"},
		{"", "y", "hr"},
		{"x", "", "trainer"},
	} {
		_, err := createStaff(ctx, store, tc.user, tc.pass, tc.role, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc)
	}
}
