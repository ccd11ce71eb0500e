// Package storage provides SQLite-backed vocabulary storage.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

// Store manages the SQLite database connection for the vocabulary.
type Store struct {
	db *sql.DB
}

// ImportResult reports how many rows an import added.
type ImportResult struct {
	WordsAdded   int
	PhrasesAdded int
}

// Stats summarizes the stored vocabulary.
type Stats struct {
	Words      int
	Phrases    int
	LastImport time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			token TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS phrases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Import adds every word and phrase of v that is not stored yet.
// The import runs in a single transaction.
func (s *Store) Import(v *vocab.Vocabulary) (ImportResult, error) {
	var res ImportResult

	tx, err := s.db.Begin()
	if err != nil {
		return res, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	for _, w := range v.SortedWords() {
		r, err := tx.Exec("INSERT OR IGNORE INTO words (token) VALUES (?)", w)
		if err != nil {
			return res, fmt.Errorf("storage: cannot insert word %q: %w", w, err)
		}
		n, err := r.RowsAffected()
		if err != nil {
			return res, fmt.Errorf("storage: cannot count inserted rows: %w", err)
		}
		res.WordsAdded += int(n)
	}

	for _, p := range v.Phrases {
		r, err := tx.Exec("INSERT OR IGNORE INTO phrases (text) VALUES (?)", p)
		if err != nil {
			return res, fmt.Errorf("storage: cannot insert phrase %q: %w", p, err)
		}
		n, err := r.RowsAffected()
		if err != nil {
			return res, fmt.Errorf("storage: cannot count inserted rows: %w", err)
		}
		res.PhrasesAdded += int(n)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return res, nil
}

// Load reads the stored vocabulary. Implements vocab.Source.
func (s *Store) Load() (*vocab.Vocabulary, error) {
	words, err := s.queryStrings("SELECT token FROM words ORDER BY token")
	if err != nil {
		return nil, err
	}
	phrases, err := s.queryStrings("SELECT text FROM phrases ORDER BY id")
	if err != nil {
		return nil, err
	}

	v, err := vocab.New(words, phrases)
	if err != nil {
		return nil, fmt.Errorf("storage: stored vocabulary is invalid: %w", err)
	}
	return v, nil
}

// Ensure Store implements vocab.Source
var _ vocab.Source = (*Store)(nil)

// RemoveWord deletes a word and every phrase that uses it.
// Returns false if the word was not stored.
func (s *Store) RemoveWord(word string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM words WHERE token = ?", word)
	if err != nil {
		return false, fmt.Errorf("storage: cannot remove word: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count removed rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	// Phrase tokens are single-space separated, so match on word boundaries
	_, err = s.db.Exec(
		`DELETE FROM phrases
		 WHERE ' ' || text || ' ' LIKE '% ' || ? || ' %'`,
		word,
	)
	if err != nil {
		return true, fmt.Errorf("storage: cannot remove phrases for %q: %w", word, err)
	}
	return true, nil
}

// Clear deletes the whole stored vocabulary.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM phrases; DELETE FROM words;"); err != nil {
		return fmt.Errorf("storage: cannot clear vocabulary: %w", err)
	}
	return nil
}

// Stats returns row counts and the most recent import time.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT (SELECT COUNT(*) FROM words), (SELECT COUNT(*) FROM phrases)`,
	).Scan(&stats.Words, &stats.Phrases)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count vocabulary: %w", err)
	}

	var lastImport any
	err = s.db.QueryRow(
		`SELECT created_at FROM words ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastImport)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last import: %w", err)
	}
	if err == nil {
		stats.LastImport = parseTime(lastImport)
	}

	return stats, nil
}

// queryStrings runs a single-column query.
func (s *Store) queryStrings(query string) ([]string, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query vocabulary: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
