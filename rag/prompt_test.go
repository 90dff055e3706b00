package rag

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minutemind/minutemind/core"
)

func TestAssembleContextEmpty(t *testing.T) {
	got := AssembleContext(core.QueryResult{})
	assert.Equal(t, "No relevant context found for the question.", got)
}

func TestAssembleContextLabels(t *testing.T) {
	matches := core.QueryResult{
		Documents: []string{"first snippet", "second snippet"},
		Metadatas: []core.ChunkMetadata{
			{Title: "Weekly sync", MeetingID: 7, ChunkIndex: 0},
			{Title: "Weekly sync", MeetingID: 7, ChunkIndex: 3},
		},
		Distances: []float32{0.1, 0.2},
	}

	got := AssembleContext(matches)

	parts := strings.Split(got, "\n\n")
	require.Len(t, parts, 2)
	assert.Equal(t, "[chunk 0 | title=\"Weekly sync\" meeting_id=7 chunk_index=0]\nfirst snippet", parts[0])
	assert.Equal(t, "[chunk 1 | title=\"Weekly sync\" meeting_id=7 chunk_index=3]\nsecond snippet", parts[1])
}

func TestAssembleContextTruncation(t *testing.T) {
	long := strings.Repeat("x", maxSnippetLen+500)
	matches := core.QueryResult{
		Documents: []string{long},
		Metadatas: []core.ChunkMetadata{{Title: "Long one", MeetingID: 1, ChunkIndex: 0}},
		Distances: []float32{0.0},
	}

	got := AssembleContext(matches)

	assert.True(t, strings.HasSuffix(got, "..."))
	// label line + newline + snippet + ellipsis
	body := got[strings.Index(got, "\n")+1:]
	assert.Len(t, body, maxSnippetLen+3)
}

func TestAssembleContextTruncationCountsCharacters(t *testing.T) {
	// Two-byte runes: truncation must count characters and never leave a
	// partial rune before the ellipsis.
	long := strings.Repeat("é", maxSnippetLen+500)
	matches := core.QueryResult{
		Documents: []string{long},
		Metadatas: []core.ChunkMetadata{{Title: "Unicode", MeetingID: 1, ChunkIndex: 0}},
		Distances: []float32{0.0},
	}

	got := AssembleContext(matches)

	require.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "é..."))
	body := got[strings.Index(got, "\n")+1:]
	assert.Equal(t, maxSnippetLen+3, len([]rune(body)))
}

func TestAssembleContextShortDocumentNotTruncated(t *testing.T) {
	matches := core.QueryResult{
		Documents: []string{"short"},
		Metadatas: []core.ChunkMetadata{{Title: "t", MeetingID: 1, ChunkIndex: 0}},
		Distances: []float32{0.0},
	}

	got := AssembleContext(matches)
	assert.True(t, strings.HasSuffix(got, "short"))
	assert.False(t, strings.Contains(got, "..."))
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("CTX", "what happened?")

	assert.True(t, strings.HasPrefix(got, "You are given extracted meeting transcript chunks and a user question."))
	assert.Contains(t, got, "Context:\nCTX")
	assert.Contains(t, got, "Question:\nwhat happened?")
	assert.Contains(t, got, "Provide a concise answer based on the context.")
	assert.Contains(t, got, "If the context is insufficient, say so.")
}
