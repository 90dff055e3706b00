package core

import (
	"testing"
)

func TestFingerprintFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same fingerprint",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer transcript excerpt that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp1 := FingerprintFromContent(tt.content)
			fp2 := FingerprintFromContent(tt.content)

			if fp1 != fp2 {
				t.Errorf("FingerprintFromContent() produced different fingerprints for same content: %d vs %d", fp1, fp2)
			}
		})
	}
}

func TestFingerprintFromContent_Different(t *testing.T) {
	fp1 := FingerprintFromContent("content1")
	fp2 := FingerprintFromContent("content2")

	if fp1 == fp2 {
		t.Errorf("FingerprintFromContent() produced same fingerprint for different content")
	}
}

func TestTranscriptChunk_RecordID(t *testing.T) {
	tests := []struct {
		name  string
		chunk TranscriptChunk
		want  string
	}{
		{
			name:  "first chunk",
			chunk: TranscriptChunk{MeetingID: 1, ChunkIndex: 0},
			want:  "1-0",
		},
		{
			name:  "later chunk",
			chunk: TranscriptChunk{MeetingID: 42, ChunkIndex: 17},
			want:  "42-17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chunk.RecordID(); got != tt.want {
				t.Errorf("RecordID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryResult_Len(t *testing.T) {
	var empty QueryResult
	if empty.Len() != 0 {
		t.Errorf("Len() of zero value = %d, want 0", empty.Len())
	}

	q := QueryResult{
		Documents: []string{"a", "b"},
		Metadatas: []ChunkMetadata{{}, {}},
		Distances: []float32{0.1, 0.2},
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}
