// Package library persists artifacts the operator pins for offline reading.
// SQLite-backed; this is the only client-side persistence besides config.
package library

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Entry is a pinned artifact plus pin metadata.
type Entry struct {
	Artifact api.Artifact
	Note     string
	PinnedAt time.Time
}

// Open creates a Store at the given path, creating tables as needed.
// Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so the whole pool sees one database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS library (
		id TEXT PRIMARY KEY,
		source_id TEXT NOT NULL,
		source_name TEXT,
		title TEXT NOT NULL,
		url TEXT,
		author TEXT,
		organization TEXT,
		language TEXT,
		topic TEXT,
		geo_location TEXT,
		mime_type TEXT,
		summary TEXT,
		label TEXT NOT NULL,
		confidence REAL NOT NULL DEFAULT 0,
		has_normalized INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		pub_date DATETIME,
		note TEXT,
		pinned_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_library_label ON library(label);
	CREATE INDEX IF NOT EXISTS idx_library_pinned ON library(pinned_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Pin saves an artifact to the library. Re-pinning replaces the stored copy
// and note.
func (s *Store) Pin(a api.Artifact, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pubDate any
	if !a.PubDate.IsZero() {
		pubDate = a.PubDate
	}

	q, args, err := sq.Insert("library").
		Columns("id", "source_id", "source_name", "title", "url", "author",
			"organization", "language", "topic", "geo_location", "mime_type",
			"summary", "label", "confidence", "has_normalized", "created_at",
			"pub_date", "note", "pinned_at").
		Values(a.ID, a.SourceID, a.SourceName, a.Title, a.URL, a.Author,
			a.Organization, a.Language, a.Topic, a.GeoLocation, a.MimeType,
			a.Summary, a.Label, a.Confidence, a.HasNormalized, a.CreatedAt,
			pubDate, note, time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET note=excluded.note, pinned_at=excluded.pinned_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build pin query: %w", err)
	}

	if _, err := s.db.Exec(q, args...); err != nil {
		return fmt.Errorf("pin artifact %s: %w", a.ID, err)
	}
	return nil
}

// Unpin removes an artifact from the library.
func (s *Store) Unpin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, args, err := sq.Delete("library").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build unpin query: %w", err)
	}
	if _, err := s.db.Exec(q, args...); err != nil {
		return fmt.Errorf("unpin artifact %s: %w", id, err)
	}
	return nil
}

// Pinned reports whether an artifact is in the library.
func (s *Store) Pinned(id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, args, err := sq.Select("1").From("library").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build pinned query: %w", err)
	}

	var one int
	err = s.db.QueryRow(q, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check pinned %s: %w", id, err)
	}
	return true, nil
}

// ListOptions narrows a library listing. Zero values mean "no constraint".
type ListOptions struct {
	Label  string
	Source string // source id
	Search string // substring on title and summary
	Limit  int
}

// List returns pinned entries, newest pin first.
func (s *Store) List(opts ListOptions) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := sq.Select("id", "source_id", "source_name", "title", "url", "author",
		"organization", "language", "topic", "geo_location", "mime_type",
		"summary", "label", "confidence", "has_normalized", "created_at",
		"pub_date", "note", "pinned_at").
		From("library").
		OrderBy("pinned_at DESC")

	if opts.Label != "" {
		b = b.Where(sq.Eq{"label": opts.Label})
	}
	if opts.Source != "" {
		b = b.Where(sq.Eq{"source_id": opts.Source})
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		b = b.Where(sq.Or{sq.Like{"title": like}, sq.Like{"summary": like}})
	}
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}

	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var pubDate sql.NullTime
		var note sql.NullString
		a := &e.Artifact
		var hasNorm int
		if err := rows.Scan(&a.ID, &a.SourceID, &a.SourceName, &a.Title, &a.URL,
			&a.Author, &a.Organization, &a.Language, &a.Topic, &a.GeoLocation,
			&a.MimeType, &a.Summary, &a.Label, &a.Confidence, &hasNorm,
			&a.CreatedAt, &pubDate, &note, &e.PinnedAt); err != nil {
			return nil, fmt.Errorf("scan library row: %w", err)
		}
		a.HasNormalized = hasNorm != 0
		if pubDate.Valid {
			a.PubDate = pubDate.Time
		}
		e.Note = note.String
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of pinned artifacts.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM library").Scan(&n); err != nil {
		return 0, fmt.Errorf("count library: %w", err)
	}
	return n, nil
}
