package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/config/sqlite"
)

func TestConnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "backoffice.db")

	db, err := sqlite.Connect(context.Background(), sqlite.Config{Path: path})
	require.NoError(t, err)

	for _, table := range []string{"operators", "bookings", "invoices", "payments"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
	require.NoError(t, sqlite.Disconnect(db))

	// Reopening an up-to-date database is a no-op migration.
	db, err = sqlite.Connect(context.Background(), sqlite.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, sqlite.Disconnect(db))
}

func TestConnectRequiresPath(t *testing.T) {
	_, err := sqlite.Connect(context.Background(), sqlite.Config{})
	assert.Error(t, err)
}
