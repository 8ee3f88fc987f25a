package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the local sqlite state database. It holds the durable pieces of
// the client's state: the session token pair with its user, and the cart
// lines, so both survive process restarts.
type DB struct {
	*sql.DB
}

// Open opens (and creates if needed) the state database at the given path.
// Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	// A single local file for a single consumer; one connection avoids
	// sqlite write contention.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping state database: %w", err)
	}

	if err := NewMigrator(db).RunMigrations(); err != nil {
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
