package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ecolake/ecolake-backend-go/internal/badges"
)

func newMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newMigratedDB(t)
	require.NoError(t, Migrate(db))

	var applied int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&applied))
	assert.Equal(t, len(migrations), applied)
}

func TestMigrateSeedsBadgeCatalog(t *testing.T) {
	db := newMigratedDB(t)

	rows, err := db.Query("SELECT name FROM badges ORDER BY name")
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())

	// Every shipped badge must have a grant rule, otherwise the catalog
	// entry is unreachable
	assert.Len(t, names, 19)
	for _, name := range names {
		_, ok := badges.RuleFor(name)
		assert.True(t, ok, "badge %q has no rule", name)
	}
}
