package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists daily words and leaderboard entries in SQLite. It is
// the only shared mutable state in the server; every access goes
// through a single *sql.DB, and leaderboard writes are conditional
// inserts so concurrent submitters cannot overwrite each other.
type Store struct {
	db *sql.DB
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS daily_words (
	variant TEXT NOT NULL,
	date    TEXT NOT NULL,
	word    TEXT NOT NULL,
	PRIMARY KEY (variant, date)
);
CREATE TABLE IF NOT EXISTS leaderboard (
	variant      TEXT    NOT NULL,
	date         TEXT    NOT NULL,
	player_id    TEXT    NOT NULL,
	name         TEXT    NOT NULL,
	score        INTEGER NOT NULL,
	attempts     INTEGER NOT NULL,
	solved       INTEGER NOT NULL,
	time_ms      INTEGER NOT NULL,
	completed_at INTEGER NOT NULL,
	PRIMARY KEY (variant, date, player_id)
);
`

// OpenStore opens (or creates) the SQLite database at path and ensures
// the schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// database-locked errors from the pure-Go driver under concurrency.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDailyWord returns the persisted word for a (variant, date), with
// found=false when no word has been set.
func (s *Store) GetDailyWord(ctx context.Context, variant, date string) (string, bool, error) {
	var word string
	err := s.db.QueryRowContext(ctx,
		`SELECT word FROM daily_words WHERE variant = ? AND date = ?`,
		variant, date).Scan(&word)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return word, true, nil
}

// SetDailyWord forces the word for a (variant, date), replacing any
// previous value. Administrative path only; normal play never mutates
// a puzzle once created.
func (s *Store) SetDailyWord(ctx context.Context, variant, date, word string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_words (variant, date, word) VALUES (?, ?, ?)
		 ON CONFLICT (variant, date) DO UPDATE SET word = excluded.word`,
		variant, date, word)
	return err
}

// CreateLeaderboardEntry records a player's result for a (variant,
// date) if and only if none exists yet. Returns created=false when the
// key was already taken, which keeps at-most-one-result per player per
// day an actual invariant instead of a client-side convention.
func (s *Store) CreateLeaderboardEntry(ctx context.Context, variant, date string, entry LeaderboardEntry) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO leaderboard (variant, date, player_id, name, score, attempts, solved, time_ms, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (variant, date, player_id) DO NOTHING`,
		variant, date, entry.PlayerID, entry.Name, entry.Score, entry.Attempts,
		entry.Solved, entry.TimeMs, entry.CompletedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListLeaderboard returns a day's entries ranked by score descending,
// earlier completion breaking ties.
func (s *Store) ListLeaderboard(ctx context.Context, variant, date string) ([]LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, name, score, attempts, solved, time_ms, completed_at
		 FROM leaderboard WHERE variant = ? AND date = ?
		 ORDER BY score DESC, completed_at ASC`,
		variant, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Name, &e.Score, &e.Attempts, &e.Solved, &e.TimeMs, &e.CompletedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CumulativeLeaderboard sums each player's scores across all dates of a
// variant, ranked by total.
func (s *Store) CumulativeLeaderboard(ctx context.Context, variant string) ([]CumulativeEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, name, SUM(score) AS total, COUNT(*) AS days
		 FROM leaderboard WHERE variant = ?
		 GROUP BY player_id
		 ORDER BY total DESC, days DESC`,
		variant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []CumulativeEntry{}
	for rows.Next() {
		var e CumulativeEntry
		if err := rows.Scan(&e.PlayerID, &e.Name, &e.Score, &e.Days); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearLeaderboard deletes a single day's leaderboard for a variant.
func (s *Store) ClearLeaderboard(ctx context.Context, variant, date string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM leaderboard WHERE variant = ? AND date = ?`, variant, date)
	return err
}

// ResetAllLeaderboards deletes every leaderboard row across all
// variants and dates and reports how many were removed.
func (s *Store) ResetAllLeaderboards(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leaderboard`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
