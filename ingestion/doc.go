// Package ingestion provides pipeline orchestration for turning meeting
// audio into stored, searchable records.
//
// The Pipeline type manages the ingestion workflow, including:
//   - Transcribing audio to text
//   - Persisting the meeting record
//   - Chunking, embedding, and indexing the transcript
//
// Stages run best-effort: a failed stage is recorded in the Report rather
// than aborting the whole ingestion, and stages that depend on an earlier
// failure record a dependency failure. Embedding work runs on a worker pool
// sized for the active embedding backend.
package ingestion
