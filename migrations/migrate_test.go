package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus/errors"
)

func TestLatest(t *testing.T) {
	for _, provider := range []string{"mariadb", "sqlite"} {
		v, err := Latest(provider)
		require.NoError(t, err, provider)
		assert.EqualValues(t, 1, v, provider)
	}

	_, err := Latest("postgres")
	assert.True(t, errors.Is(errors.NoMigrations, err))
}

// tableDefinition returns the CREATE TABLE statement of table in schema
func tableDefinition(t *testing.T, schema, table string) string {
	start := strings.Index(schema, "CREATE TABLE `"+table+"`")
	require.NotEqual(t, -1, start, "missing table %s", table)
	end := strings.Index(schema[start:], ";")
	require.NotEqual(t, -1, end)
	return schema[start : start+end]
}

func TestMySQLNaturalKeysNoPad(t *testing.T) {
	fsys, ok := FS("mariadb")
	require.True(t, ok)
	raw, err := fs.ReadFile(fsys, "0001_init.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	// PAD SPACE collations would make "name" and "name " the same key
	keys := map[string]string{
		"artists":  "name",
		"albums":   "title",
		"tracks":   "title",
		"stations": "name",
	}
	for table, column := range keys {
		def := tableDefinition(t, schema, table)
		assert.Contains(t, def, "`"+column+"` varchar(255) COLLATE utf8mb4_nopad_bin NOT NULL", table)
	}
}
