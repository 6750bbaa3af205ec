package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fitclub-admin/internal/domain"
)

func lockSQL(t *testing.T, d gorm.Dialector) string {
	t.Helper()
	db, err := gorm.Open(d, &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var s domain.Schedule
		return forUpdate(tx).First(&s, "id = ?", 1)
	})
}

func TestForUpdate_LocksRowOnServerDatabases(t *testing.T) {
	// no connection is made: ToSQL runs in dry-run mode
	sql := lockSQL(t, postgres.New(postgres.Config{DSN: "host=127.0.0.1 user=fitclub dbname=fitclub sslmode=disable"}))
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, `"schedules"`)
}

func TestForUpdate_SQLiteOmitsClause(t *testing.T) {
	sql := lockSQL(t, sqlite.Open(":memory:"))
	assert.NotContains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, "schedules")
}
