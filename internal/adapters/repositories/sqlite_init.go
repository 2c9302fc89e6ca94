package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProblemsQuery := `
	CREATE TABLE IF NOT EXISTS problems (
		problem_id INTEGER PRIMARY KEY AUTOINCREMENT,
		payload    TEXT NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		payload   TEXT NOT NULL
	);
	`

	for _, q := range []string{createProblemsQuery, createRouteCacheQuery} {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("init schema: create table: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}

// SeedFromJSON loads demo problems from a seed file when the problems table
// is empty. A missing seed file is not an error (fresh checkouts without
// data/ still boot).
func SeedFromJSON(db *sql.DB, seedPath string) error {
	if db == nil {
		return errors.New("seed problems: DB is nil")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM problems;`).Scan(&count); err != nil {
		return fmt.Errorf("seed problems: count existing: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(seedPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed problems: read %q: %w", seedPath, err)
	}

	var records []problemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("seed problems: parse %q: %w", seedPath, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed problems: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO problems (payload) VALUES (?);`)
	if err != nil {
		return fmt.Errorf("seed problems: prepare: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("seed problems: marshal record %d: %w", i, err)
		}
		if _, err := stmt.Exec(payload); err != nil {
			return fmt.Errorf("seed problems: insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed problems: commit: %w", err)
	}

	return nil
}
