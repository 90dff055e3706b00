package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint is a 64-bit content hash used to detect duplicate transcripts.
type Fingerprint uint64

// FingerprintFromContent generates a deterministic fingerprint from text
// content using BLAKE2b hashing. Identical content always produces the same
// fingerprint.
func FingerprintFromContent(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// TranscriptChunk is a bounded window of one meeting's transcript.
// ChunkIndex is the chunk's 0-based position within its source transcript
// and is unique only within a meeting. Chunks are immutable once created.
type TranscriptChunk struct {
	MeetingID  int64
	ChunkIndex int
	Text       string
}

// RecordID derives the index record id for this chunk.
// The id is globally unique: "<meeting_id>-<chunk_index>".
func (c TranscriptChunk) RecordID() string {
	return fmt.Sprintf("%d-%d", c.MeetingID, c.ChunkIndex)
}

// ChunkMetadata identifies the origin of an indexed document.
type ChunkMetadata struct {
	Title      string
	MeetingID  int64
	ChunkIndex int
}

// IndexRecord is the unit stored in the vector index. Created once per chunk
// at ingestion time and never mutated afterwards.
type IndexRecord struct {
	ID       string
	Vector   []float32
	Document string
	Metadata ChunkMetadata
}

// QueryResult holds ranked matches from a vector index query. The three
// slices are parallel: Documents[i], Metadatas[i] and Distances[i] describe
// the i-th match, ordered by ascending distance. It is ephemeral and never
// persisted.
type QueryResult struct {
	Documents []string
	Metadatas []ChunkMetadata
	Distances []float32
}

// Len returns the number of matches.
func (q QueryResult) Len() int {
	return len(q.Documents)
}

// Meeting is a stored meeting record.
type Meeting struct {
	ID          int64
	Title       string
	Transcript  string
	Insights    string
	Fingerprint Fingerprint
}

// Answer is the result of one retrieval-augmented query. Matches carries the
// raw index result so callers can inspect what grounded the answer, including
// in degraded mode when generation was unavailable.
type Answer struct {
	Answer   string
	Question string
	Matches  QueryResult
}
