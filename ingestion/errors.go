package ingestion

import "errors"

var (
	// ErrTranscriberRequired is returned when a transcriber is not provided.
	ErrTranscriberRequired = errors.New("transcriber required")

	// ErrMeetingStoreRequired is returned when a meeting store is not provided.
	ErrMeetingStoreRequired = errors.New("meeting store required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrEmbedderRequired is returned when an embedder selection is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrStageSkipped marks a stage that never ran because an earlier stage
	// it depends on failed.
	ErrStageSkipped = errors.New("stage skipped: dependency failed")
)
