package wordlist

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS words (
	id   INTEGER PRIMARY KEY,
	word TEXT NOT NULL UNIQUE
)`

type sqliteSource struct {
	path string
}

// SQLite returns a source reading the words table of the database at path.
func SQLite(path string) Source { return sqliteSource{path: path} }

func (s sqliteSource) Load() ([]string, error) {
	// sql.Open would create a missing database file.
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("opening word database: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening word database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(context.Background(), "SELECT word FROM words ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating words: %w", err)
	}

	return words, nil
}

func (s sqliteSource) String() string { return "sqlite:" + s.path }

// Import stores words in the database at path, creating the file and table
// if needed. Words already present are ignored. It returns the number of
// words inserted.
func Import(ctx context.Context, path string, words []string) (int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("opening word database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return 0, fmt.Errorf("creating words table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO words (word) VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, w)
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing words: %w", err)
	}

	return inserted, nil
}

// Stats summarizes a word database.
type Stats struct {
	Words   int
	Longest int
}

// ReadStats returns the number of words and the longest word length in the
// database at path.
func ReadStats(ctx context.Context, path string) (Stats, error) {
	if _, err := os.Stat(path); err != nil {
		return Stats{}, fmt.Errorf("opening word database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Stats{}, fmt.Errorf("opening word database: %w", err)
	}
	defer db.Close()

	var st Stats
	row := db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(MAX(LENGTH(word)), 0) FROM words")
	if err := row.Scan(&st.Words, &st.Longest); err != nil {
		return Stats{}, fmt.Errorf("reading stats: %w", err)
	}

	return st, nil
}
