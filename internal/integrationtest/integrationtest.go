// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"database/sql"
	"testing"

	"github.com/go-petr/pet-ledger/pkg/dbpkg"
)

// Flush truncates all db tables without droping them.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public' AND table_name <> 'schema_migrations';`

	row := db.QueryRow(query)

	if err := row.Scan(&tables); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}
