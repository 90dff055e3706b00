package ai

import (
	"context"
	"fmt"

	"github.com/minutemind/minutemind/core"
)

// ActiveBackend identifies which embedding backend was selected at startup.
type ActiveBackend int

const (
	// BackendNone means no embedding backend is available. Every embed
	// call fails with core.ErrNoEmbeddingBackend.
	BackendNone ActiveBackend = iota

	// BackendLocal is a local Ollama embedding server.
	BackendLocal

	// BackendRemote is a remote OpenAI-compatible embedding API.
	BackendRemote
)

// String returns the backend name.
func (b ActiveBackend) String() string {
	switch b {
	case BackendLocal:
		return "local"
	case BackendRemote:
		return "remote"
	default:
		return "none"
	}
}

// Selection is the result of the startup capability-detection step. It pins
// one backend and its Embedder for the process lifetime; all vectors written
// to a single index instance must come from the same Selection.
type Selection struct {
	Backend  ActiveBackend
	Embedder Embedder
}

// NewNoneEmbedder returns the permanently-failed Embedder used when no
// backend is available. Calls with non-empty input fail loudly rather than
// returning empty vectors, since silently stored malformed records would be
// worse than an error.
func NewNoneEmbedder() Embedder {
	return noneEmbedder{}
}

type noneEmbedder struct{}

var _ Embedder = noneEmbedder{}

func (noneEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("%w: embedding requested but no backend was selected at startup",
		core.ErrNoEmbeddingBackend)
}

func (noneEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	return nil, fmt.Errorf("%w: embedding requested but no backend was selected at startup",
		core.ErrNoEmbeddingBackend)
}
