package conf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgConnStrFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "skolapp")
	t.Setenv("POSTGRES_PW", "secret")
	t.Setenv("POSTGRES_DB", "skolapp")
	t.Setenv("POSTGRES_SSLMODE", "disable")

	connStr, err := PgConnStr(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		"host=localhost port=5432 user=skolapp password=secret dbname=skolapp sslmode=disable",
		connStr)
}

func TestPgConnStrMissingPasswordSource(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PW", "")
	t.Setenv("POSTGRES_PASSWORD_SECRET_NAME", "")

	_, err := PgConnStr(context.Background())
	assert.Error(t, err)
}
