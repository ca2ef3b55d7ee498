package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus/storage/sqlite"
	storagetest "github.com/trackhaus/trackhaus/storage/test"
)

func TestSQLiteStorage(t *testing.T) {
	storagetest.RunTests(t, new(storagetest.SQLiteSetup))
}

func TestFormatDSN(t *testing.T) {
	dsn, err := sqlite.FormatDSN("/var/lib/trackhaus/trackhaus.db")
	require.NoError(t, err)
	assert.Contains(t, dsn, "/var/lib/trackhaus/trackhaus.db?")
	assert.Contains(t, dsn, "_loc=UTC")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_foreign_keys=on")

	// parameters that are already there are kept
	dsn, err = sqlite.FormatDSN("file:test.db?_busy_timeout=100&cache=shared")
	require.NoError(t, err)
	assert.Contains(t, dsn, "_busy_timeout=100")
	assert.NotContains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "cache=shared")

	_, err = sqlite.FormatDSN("test.db?%zz")
	assert.Error(t, err)
}

func TestDialect(t *testing.T) {
	assert.False(t, sqlite.Dialect.IsUniqueViolation(assert.AnError))
	assert.False(t, sqlite.Dialect.IsRetryable(assert.AnError))
	assert.False(t, sqlite.Dialect.IsUnavailable(assert.AnError))
}
