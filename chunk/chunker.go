package chunk

import (
	"fmt"
	"strings"

	"github.com/minutemind/minutemind/core"
)

const (
	// DefaultChunkSize is the default window length in characters.
	DefaultChunkSize = 1000

	// DefaultOverlap is the default number of characters shared between
	// consecutive windows.
	DefaultOverlap = 200
)

// Options holds chunking parameters.
type Options struct {
	ChunkSize int
	Overlap   int
}

// Option configures chunking parameters.
type Option func(*Options)

// WithChunkSize sets the window length in characters.
func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.ChunkSize = size
	}
}

// WithOverlap sets the number of characters shared between consecutive
// windows.
func WithOverlap(overlap int) Option {
	return func(o *Options) {
		o.Overlap = overlap
	}
}

// DefaultOptions returns the default chunking parameters.
func DefaultOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
		Overlap:   DefaultOverlap,
	}
}

// Validate checks that the parameters describe a terminating split.
// The overlap must be strictly smaller than the chunk size, otherwise the
// advance step is zero or negative and splitting would never terminate.
func (o Options) Validate() error {
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive",
			core.ErrInvalidChunkConfig, o.ChunkSize)
	}
	if o.Overlap < 0 {
		return fmt.Errorf("%w: overlap %d must not be negative",
			core.ErrInvalidChunkConfig, o.Overlap)
	}
	if o.Overlap >= o.ChunkSize {
		return fmt.Errorf("%w: overlap %d must be smaller than chunk size %d",
			core.ErrInvalidChunkConfig, o.Overlap, o.ChunkSize)
	}
	return nil
}

// Split partitions text into overlapping windows. Sizes and offsets count
// characters, not bytes, so multibyte text chunks the same as ASCII and no
// window ever cuts a rune in half. Each window is trimmed of leading and
// trailing whitespace; windows that become empty after trimming are dropped.
// An empty text yields an empty slice and no error.
func Split(text string, opts ...Option) ([]string, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if text == "" {
		return []string{}, nil
	}

	runes := []rune(text)
	step := options.ChunkSize - options.Overlap
	chunks := make([]string, 0, (len(runes)+step-1)/step)
	for start := 0; start < len(runes); start += step {
		end := start + options.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		window := strings.TrimSpace(string(runes[start:end]))
		if window == "" {
			continue
		}
		chunks = append(chunks, window)
	}
	return chunks, nil
}

// ChunksFor splits text and wraps each window into a TranscriptChunk for the
// given meeting, assigning 0-based chunk indices in window order.
func ChunksFor(meetingID int64, text string, opts ...Option) ([]core.TranscriptChunk, error) {
	windows, err := Split(text, opts...)
	if err != nil {
		return nil, err
	}

	chunks := make([]core.TranscriptChunk, len(windows))
	for i, window := range windows {
		chunks[i] = core.TranscriptChunk{
			MeetingID:  meetingID,
			ChunkIndex: i,
			Text:       window,
		}
	}
	return chunks, nil
}
