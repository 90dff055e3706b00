package storage

import (
	"context"

	"github.com/minutemind/minutemind/core"
)

// Filter restricts vector index query results by exact metadata equality.
// Zero-valued fields are ignored; a record matches only if all set fields
// match. Range queries are not supported.
type Filter struct {
	// MeetingID, when non-zero, restricts results to one meeting.
	MeetingID int64

	// Title, when non-empty, restricts results to records with this title.
	Title string
}

// Matches reports whether metadata satisfies every set filter field.
func (f Filter) Matches(meta core.ChunkMetadata) bool {
	if f.MeetingID != 0 && meta.MeetingID != f.MeetingID {
		return false
	}
	if f.Title != "" && meta.Title != f.Title {
		return false
	}
	return true
}

// VectorIndex is a persistent collection of index records supporting atomic
// upsert and nearest-neighbor queries.
type VectorIndex interface {
	// Upsert atomically adds all records, or none on failure. Records with
	// duplicate ids overwrite prior content (last-write-wins); callers that
	// re-ingest a meeting therefore replace its earlier chunks
	// deterministically. The first upsert pins the index dimension; records
	// with a different vector dimension are rejected.
	Upsert(ctx context.Context, records ...core.IndexRecord) error

	// Query returns up to k records matching the filter, ranked by
	// ascending cosine distance from vector (smaller = more similar).
	// Fewer than k matches returns all of them; zero matches returns an
	// empty QueryResult and no error.
	Query(ctx context.Context, vector []float32, k int, filter Filter) (core.QueryResult, error)

	// Count returns the number of records stored for a meeting.
	// A meetingID of 0 counts all records.
	Count(ctx context.Context, meetingID int64) (int, error)

	// Close closes the index and releases resources.
	Close() error
}

// MeetingStore holds meeting records keyed by an ascending integer id.
type MeetingStore interface {
	// InsertMeeting stores a meeting row and returns its generated id.
	InsertMeeting(ctx context.Context, title, transcript, insights string) (int64, error)

	// ListMeetings returns all meetings ordered by ascending id.
	ListMeetings(ctx context.Context) ([]core.Meeting, error)

	// Close closes the store and releases resources.
	Close() error
}
