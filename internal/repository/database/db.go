package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the DKV2 SQLite database at path. The schema is assumed to
// exist; this tool only ever appends rows.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// Single writer, no concurrent readers.
	db.SetMaxOpenConns(1)
	return db, nil
}
