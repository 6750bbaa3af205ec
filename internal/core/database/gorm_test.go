package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"empty", "", "", "", ""},
		{"native dsn untouched", "root:pw@tcp(db:3306)/fok?parseTime=true", "", "", "root:pw@tcp(db:3306)/fok?parseTime=true"},
		{"url form", "mysql://root:pw@db:3306/fok", "", "", "root:pw@tcp(db:3306)/fok?charset=utf8mb4&parseTime=true"},
		{"jdbc with overrides", "jdbc:mysql://db:3306/fok?useSSL=false&useUnicode=true", "svc", "s3cret", "svc:s3cret@tcp(db:3306)/fok?charset=utf8mb4&parseTime=true&tls=false"},
		{"query credentials", "mysql://db:3306/fok?user=u&password=p&characterEncoding=latin1", "", "", "u:p@tcp(db:3306)/fok?charset=latin1&parseTime=true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/fok", MaskDSN("root:pw@tcp(db:3306)/fok"))
	assert.Equal(t, "postgres://app:****@db:5432/fok", MaskDSN("postgres://app:pw@db:5432/fok"))
	assert.Equal(t, "file:fitclub.db", MaskDSN("file:fitclub.db"))
}

func TestNewGormRejectsUnknownDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewGormSQLiteMemory(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, LogLevel: "silent"})
	require.NoError(t, err)
	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
