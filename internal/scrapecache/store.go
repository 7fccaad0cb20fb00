package scrapecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store caches successful scraper lookups so repeated retag runs over
// the same series do not hit the network source again.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS episode_titles (
    scraper    TEXT NOT NULL,
    series     TEXT NOT NULL,
    season     INTEGER NOT NULL,
    episode    INTEGER NOT NULL,
    title      TEXT NOT NULL,
    created_at TEXT NOT NULL,
    PRIMARY KEY (scraper, series, season, episode)
);`

// Open initializes or connects to the cache database at path, creating
// parent directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached title for one episode and whether it was found.
func (s *Store) Get(ctx context.Context, scraper, series string, season, episode int) (string, bool, error) {
	var title string
	err := s.db.QueryRowContext(ctx,
		`SELECT title FROM episode_titles WHERE scraper = ? AND series = ? AND season = ? AND episode = ?`,
		scraper, series, season, episode,
	).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query episode title: %w", err)
	}
	return title, true, nil
}

// Put stores or replaces the cached title for one episode.
func (s *Store) Put(ctx context.Context, scraper, series string, season, episode int, title string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO episode_titles (scraper, series, season, episode, title, created_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(scraper, series, season, episode) DO UPDATE SET title = excluded.title`,
		scraper, series, season, episode, title,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert episode title: %w", err)
	}
	return nil
}
