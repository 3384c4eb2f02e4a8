package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDB(t *testing.T) {
	t.Parallel()

	t.Run("names", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "wikistats", DB_NAME)
		require.Equal(t, "wikistats", MAIN_SCHEMA)
	})

	t.Run("NewPostgresDatabase", func(t *testing.T) {
		t.Parallel()

		db := newTestDatabase(t)
		require.NoError(t, db.PingContext(t.Context()))
	})

	t.Run("invalid connection string", func(t *testing.T) {
		t.Parallel()

		_, err := NewPostgresDatabase("postgres://%zz")
		require.Error(t, err)
	})
}
