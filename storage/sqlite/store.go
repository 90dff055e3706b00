// Package sqlite implements storage.MeetingStore on an embedded SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/minutemind/minutemind/core"
	"github.com/minutemind/minutemind/storage"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS meetings (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	transcript  TEXT NOT NULL,
	insights    TEXT NOT NULL,
	fingerprint INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meetings_fingerprint ON meetings(fingerprint);
`

// Store implements storage.MeetingStore on SQLite. Meeting ids come from the
// table's autoincrement sequence and are therefore strictly ascending.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ storage.MeetingStore = (*Store)(nil)

// Open opens or creates the meeting database at the given path. Schema
// creation is idempotent across restarts.
//
// Returns storage.MeetingStore interface to enforce abstraction.
func Open(path string) (storage.MeetingStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %w", core.ErrMeetingStore, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode=WAL&_pragma=synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", core.ErrMeetingStore, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", core.ErrMeetingStore, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to create schema: %w", core.ErrMeetingStore, err)
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "meeting-store"),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertMeeting stores a meeting row and returns its generated id. A
// transcript whose fingerprint matches an earlier row is logged as a likely
// duplicate upload but stored anyway; the new row gets a fresh id, so its
// chunks can never collide with the earlier meeting's index records.
func (s *Store) InsertMeeting(ctx context.Context, title, transcript, insights string) (int64, error) {
	fingerprint := core.FingerprintFromContent(transcript)

	var existing int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM meetings WHERE fingerprint = ? LIMIT 1",
		int64(fingerprint)).Scan(&existing)
	switch {
	case err == nil:
		s.logger.Warn("transcript matches an existing meeting",
			"existing_id", existing, "title", title)
	case err != sql.ErrNoRows:
		return 0, fmt.Errorf("%w: fingerprint lookup failed: %w", core.ErrMeetingStore, err)
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO meetings (title, transcript, insights, fingerprint) VALUES (?, ?, ?, ?)",
		title, transcript, insights, int64(fingerprint))
	if err != nil {
		return 0, fmt.Errorf("%w: insert failed: %w", core.ErrMeetingStore, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrMeetingStore, err)
	}
	return id, nil
}

// ListMeetings returns all meetings ordered by ascending id.
func (s *Store) ListMeetings(ctx context.Context) ([]core.Meeting, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, transcript, insights, fingerprint FROM meetings ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: list failed: %w", core.ErrMeetingStore, err)
	}
	defer rows.Close()

	meetings := make([]core.Meeting, 0)
	for rows.Next() {
		var m core.Meeting
		var fingerprint int64
		if err := rows.Scan(&m.ID, &m.Title, &m.Transcript, &m.Insights, &fingerprint); err != nil {
			return nil, fmt.Errorf("%w: scan failed: %w", core.ErrMeetingStore, err)
		}
		m.Fingerprint = core.Fingerprint(fingerprint)
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMeetingStore, err)
	}
	return meetings, nil
}
