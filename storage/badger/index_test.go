package badger

import (
	"context"
	"testing"

	"github.com/minutemind/minutemind/core"
	"github.com/minutemind/minutemind/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(meetingID int64, chunkIndex int, vector []float32, doc string) core.IndexRecord {
	chunk := core.TranscriptChunk{MeetingID: meetingID, ChunkIndex: chunkIndex}
	return core.IndexRecord{
		ID:       chunk.RecordID(),
		Vector:   vector,
		Document: doc,
		Metadata: core.ChunkMetadata{
			Title:      "meeting.wav",
			MeetingID:  meetingID,
			ChunkIndex: chunkIndex,
		},
	}
}

func TestIndex_UpsertAndQuery(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	err = ix.Upsert(ctx,
		newTestRecord(1, 0, []float32{1, 0, 0}, "chunk zero"),
		newTestRecord(1, 1, []float32{0, 1, 0}, "chunk one"),
	)
	require.NoError(t, err)

	result, err := ix.Query(ctx, []float32{1, 0, 0}, 5, storage.Filter{MeetingID: 1})
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, "chunk zero", result.Documents[0])
	assert.Equal(t, 0, result.Metadatas[0].ChunkIndex)
	assert.Less(t, result.Distances[0], result.Distances[1])
}

func TestIndex_QueryMeetingScoping(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	err = ix.Upsert(ctx,
		newTestRecord(1, 0, []float32{1, 0, 0}, "meeting one"),
		newTestRecord(2, 0, []float32{1, 0, 0}, "meeting two"),
		newTestRecord(3, 0, []float32{1, 0, 0}, "meeting three"),
	)
	require.NoError(t, err)

	result, err := ix.Query(ctx, []float32{1, 0, 0}, 10, storage.Filter{MeetingID: 2})
	require.NoError(t, err)
	require.Equal(t, 1, result.Len())
	assert.Equal(t, "meeting two", result.Documents[0])
	for _, meta := range result.Metadatas {
		assert.Equal(t, int64(2), meta.MeetingID)
	}
}

func TestIndex_QueryRanking(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	// Three vectors at increasing angles from the query vector.
	err = ix.Upsert(ctx,
		newTestRecord(1, 0, []float32{1, 0.05, 0}, "closest"),
		newTestRecord(1, 1, []float32{1, 0.5, 0}, "middle"),
		newTestRecord(1, 2, []float32{0, 1, 0}, "farthest"),
	)
	require.NoError(t, err)

	result, err := ix.Query(ctx, []float32{1, 0, 0}, 2, storage.Filter{MeetingID: 1})
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, []string{"closest", "middle"}, result.Documents)
	assert.Less(t, result.Distances[0], result.Distances[1])
}

func TestIndex_QueryNoMatches(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	err = ix.Upsert(ctx, newTestRecord(1, 0, []float32{1, 0, 0}, "only meeting one"))
	require.NoError(t, err)

	result, err := ix.Query(ctx, []float32{1, 0, 0}, 5, storage.Filter{MeetingID: 99})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Len())
	assert.Empty(t, result.Documents)
}

func TestIndex_QueryInvalidK(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	_, err = ix.Query(context.Background(), []float32{1}, 0, storage.Filter{})
	assert.ErrorIs(t, err, core.ErrIndexQuery)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestIndex_UpsertOverwrites(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Upsert(ctx, newTestRecord(1, 0, []float32{1, 0, 0}, "first version")))
	require.NoError(t, ix.Upsert(ctx, newTestRecord(1, 0, []float32{0, 1, 0}, "second version")))

	count, err := ix.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	result, err := ix.Query(ctx, []float32{0, 1, 0}, 5, storage.Filter{MeetingID: 1})
	require.NoError(t, err)
	require.Equal(t, 1, result.Len())
	assert.Equal(t, "second version", result.Documents[0])
}

func TestIndex_UpsertAtomicity(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	invalid := newTestRecord(1, 1, nil, "no vector")

	err = ix.Upsert(ctx, newTestRecord(1, 0, []float32{1, 0}, "valid"), invalid)
	require.ErrorIs(t, err, core.ErrIndexWrite)

	// The failed call must not have written the valid record either.
	count, err := ix.Count(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIndex_DimensionPinned(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Upsert(ctx, newTestRecord(1, 0, []float32{1, 0, 0}, "three dims")))

	t.Run("write with other dimension rejected", func(t *testing.T) {
		err := ix.Upsert(ctx, newTestRecord(1, 1, []float32{1, 0}, "two dims"))
		require.ErrorIs(t, err, core.ErrIndexWrite)
		assert.ErrorIs(t, err, storage.ErrDimensionMismatch)
	})

	t.Run("query with other dimension rejected", func(t *testing.T) {
		_, err := ix.Query(ctx, []float32{1, 0}, 5, storage.Filter{MeetingID: 1})
		require.ErrorIs(t, err, core.ErrIndexQuery)
		assert.ErrorIs(t, err, storage.ErrDimensionMismatch)
	})
}

func TestIndex_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	ix, err := OpenIndex(dir, false)
	require.NoError(t, err)
	require.NoError(t, ix.Upsert(ctx, newTestRecord(1, 0, []float32{1, 0, 0}, "durable chunk")))
	require.NoError(t, ix.Close())

	reopened, err := OpenIndex(dir, false)
	require.NoError(t, err)
	defer reopened.Close()

	result, err := reopened.Query(ctx, []float32{1, 0, 0}, 5, storage.Filter{MeetingID: 1})
	require.NoError(t, err)
	require.Equal(t, 1, result.Len())
	assert.Equal(t, "durable chunk", result.Documents[0])

	// The pinned dimension also survives the restart.
	err = reopened.Upsert(ctx, newTestRecord(1, 1, []float32{1, 0}, "wrong dims"))
	assert.ErrorIs(t, err, storage.ErrDimensionMismatch)
}

func TestIndex_Count(t *testing.T) {
	ix, err := NewMemoryIndex()
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Upsert(ctx,
		newTestRecord(1, 0, []float32{1, 0}, "a"),
		newTestRecord(1, 1, []float32{0, 1}, "b"),
		newTestRecord(2, 0, []float32{1, 1}, "c"),
	))

	total, err := ix.Count(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	one, err := ix.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, one)
}
