// Package sqlite opens the database and bootstraps the schema. The driver
// is selected by config; sqlite3 is the system of record, mysql is
// supported through the same code path.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema/users.sql schema/sessions.sql
var schemaFS embed.FS

var schemaFiles = []string{
	"schema/users.sql",
	"schema/sessions.sql",
}

func Load(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	if err := Bootstrap(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create tables: %w", err)
	}
	return db, nil
}

func Bootstrap(db *sql.DB) error {
	for _, file := range schemaFiles {
		query, err := schemaFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if _, err := db.Exec(string(query)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file, err)
		}
	}
	return nil
}
