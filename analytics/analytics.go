// Package analytics is a minimal page-view counter. It stores daily
// per-path counts in SQLite and nothing else: no cookies, no IP addresses,
// no visitor identifiers.
package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for page-view counts.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure analytics schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_views (
    day TEXT NOT NULL,
    path TEXT NOT NULL,
    locale TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (day, path, locale)
);
CREATE INDEX IF NOT EXISTS idx_page_views_day ON page_views(day);
`)
	return err
}

// RecordView increments today's counter for the given path and locale.
func (s *Store) RecordView(path, locale string) error {
	day := time.Now().UTC().Format("2006-01-02")
	_, err := s.db.Exec(`
INSERT INTO page_views (day, path, locale, count) VALUES (?, ?, ?, 1)
ON CONFLICT (day, path, locale) DO UPDATE SET count = count + 1`,
		day, path, locale)
	return err
}

// PageCount is one row of the view summary.
type PageCount struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// Summary returns total views per path over the last days, most viewed first.
func (s *Store) Summary(days int) ([]PageCount, error) {
	since := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	rows, err := s.db.Query(`
SELECT path, SUM(count) FROM page_views WHERE day >= ? GROUP BY path ORDER BY SUM(count) DESC`,
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PageCount
	for rows.Next() {
		var pc PageCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// TotalViews returns the total view count over the last days.
func (s *Store) TotalViews(days int) (int, error) {
	since := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	var total sql.NullInt64
	err := s.db.QueryRow(`SELECT SUM(count) FROM page_views WHERE day >= ?`, since).Scan(&total)
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}
