package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const DB_NAME = "wikistats"

const MAIN_SCHEMA = "wikistats"

// Connection string for the database used by the integration tests
const TEST_DATABASE_URL_ENV = "WIKISTATS_TEST_DATABASE_URL"

func NewPostgresDatabase(connectionString string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return db, nil
}
