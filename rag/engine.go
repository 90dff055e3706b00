package rag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minutemind/minutemind/ai"
	"github.com/minutemind/minutemind/core"
	"github.com/minutemind/minutemind/storage"
)

// defaultTopK is the number of nearest chunks retrieved per question.
const defaultTopK = 5

// Engine orchestrates retrieval-augmented question answering for meetings.
type Engine struct {
	index      storage.VectorIndex
	embedder   ai.Embedder
	completion CompletionClient
	topK       int
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithTopK sets the number of nearest chunks retrieved per question.
// Values below 1 fall back to the default.
func WithTopK(k int) Option {
	return func(e *Engine) error {
		if k < 1 {
			k = defaultTopK
		}
		e.topK = k
		return nil
	}
}

// NewEngine creates a query engine.
func NewEngine(
	index storage.VectorIndex,
	embedder ai.Embedder,
	completion CompletionClient,
	opts ...Option,
) (*Engine, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if completion == nil {
		return nil, ErrCompletionClientRequired
	}

	e := &Engine{
		index:      index,
		embedder:   embedder,
		completion: completion,
		topK:       defaultTopK,
		logger:     slog.Default().With("component", "rag-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Answer answers a free-text question about one meeting.
//
// Embedding and retrieval failures abort the whole operation: a malformed
// answer would be worse than no answer. Completion-service failures do not;
// the failure is embedded in the answer text and the retrieved matches are
// still returned (degraded mode).
//
// An empty question is not rejected: it proceeds through embedding like any
// other text, matching the upstream system's behavior.
func (e *Engine) Answer(ctx context.Context, meetingID int64, question string) (core.Answer, error) {
	vector, err := e.embedder.EmbedText(ctx, question)
	if err != nil {
		e.logger.Error("error embedding question", "meetingID", meetingID, "err", err)
		return core.Answer{}, err
	}

	matches, err := e.index.Query(ctx, vector, e.topK, storage.Filter{MeetingID: meetingID})
	if err != nil {
		e.logger.Error("error querying index", "meetingID", meetingID, "err", err)
		return core.Answer{}, err
	}
	e.logger.Debug("retrieved chunks", "meetingID", meetingID, "count", matches.Len())

	prompt := BuildPrompt(AssembleContext(matches), question)

	answer := e.generate(ctx, prompt)

	return core.Answer{
		Answer:   answer,
		Question: question,
		Matches:  matches,
	}, nil
}

// generate calls the completion service and turns every outcome into answer
// text. The three cases: transport failure, non-success status, and success.
func (e *Engine) generate(ctx context.Context, prompt string) string {
	res, err := e.completion.Complete(ctx, prompt)
	if err != nil {
		e.logger.Warn("completion service unreachable", "err", err)
		return fmt.Sprintf("Completion request failed: %v", err)
	}
	if !res.OK() {
		e.logger.Warn("completion service returned error status",
			"status", res.StatusCode)
		return fmt.Sprintf("Completion service returned status %d: %s",
			res.StatusCode, string(res.Body))
	}
	return res.GeneratedText()
}
