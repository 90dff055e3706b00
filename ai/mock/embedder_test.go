package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	v1, err := embedder.EmbedText(ctx, "the same text")
	require.NoError(t, err)
	v2, err := embedder.EmbedText(ctx, "the same text")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	other, err := embedder.EmbedText(ctx, "a different text")
	require.NoError(t, err)
	assert.NotEqual(t, v1, other)
}

func TestMockEmbedder_DimensionInvariant(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	vectors, err := embedder.EmbedTexts(ctx, []string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	single, err := embedder.EmbedText(ctx, "four")
	require.NoError(t, err)

	for _, v := range vectors {
		assert.Len(t, v, len(single))
	}
}

func TestMockEmbedder_CallCount(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	_, _ = embedder.EmbedText(ctx, "a")
	_, _ = embedder.EmbedTexts(ctx, []string{"b"})
	assert.Equal(t, 2, embedder.CallCount())

	embedder.Reset()
	assert.Equal(t, 0, embedder.CallCount())
}
