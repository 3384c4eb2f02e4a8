package databasetest

import (
	"os"
	"testing"

	"github.com/Amund211/wikistats/internal/adapters/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Connects to the test database, skipping the test when none is configured
func NewTestDatabase(t *testing.T) *sqlx.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping db tests in short mode.")
	}

	connectionString, ok := os.LookupEnv(database.TEST_DATABASE_URL_ENV)
	if !ok || connectionString == "" {
		t.Skipf("skipping db tests, %s is not set.", database.TEST_DATABASE_URL_ENV)
	}

	db, err := database.NewPostgresDatabase(connectionString)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return db
}
