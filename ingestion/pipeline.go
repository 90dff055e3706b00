package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/minutemind/minutemind/ai"
	"github.com/minutemind/minutemind/chunk"
	"github.com/minutemind/minutemind/core"
	"github.com/minutemind/minutemind/storage"
	"github.com/minutemind/minutemind/transcribe"
)

// embedBatchSize is the number of chunks embedded per pool task.
const embedBatchSize = 16

// Pipeline orchestrates the ingestion of meeting audio: transcription,
// record storage, and transcript indexing.
type Pipeline struct {
	transcriber transcribe.Transcriber
	store       storage.MeetingStore
	index       storage.VectorIndex
	selection   ai.Selection
	chunkOpts   []chunk.Option
	pool        *ants.Pool
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize overrides the embedding worker pool size. Values below 1 are
// clamped to 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunkOptions sets the chunking parameters used when indexing
// transcripts. Defaults to the chunk package defaults.
func WithChunkOptions(opts ...chunk.Option) Option {
	return func(p *Pipeline) error {
		p.chunkOpts = opts
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// poolSizeFor picks the embedding pool size for a backend. A local model
// serves one request at a time, so the pool stays single-worker to keep
// batches ordered behind each other; a remote API tolerates fan-out.
func poolSizeFor(backend ai.ActiveBackend) int {
	if backend != ai.BackendRemote {
		return 1
	}
	size := runtime.NumCPU() / 2
	if size < 1 {
		size = 1
	}
	return size
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(
	transcriber transcribe.Transcriber,
	store storage.MeetingStore,
	index storage.VectorIndex,
	selection ai.Selection,
	opts ...Option,
) (*Pipeline, error) {
	if transcriber == nil {
		return nil, ErrTranscriberRequired
	}
	if store == nil {
		return nil, ErrMeetingStoreRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}
	if selection.Embedder == nil {
		return nil, ErrEmbedderRequired
	}

	pool, err := ants.NewPool(poolSizeFor(selection.Backend))
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		transcriber: transcriber,
		store:       store,
		index:       index,
		selection:   selection,
		pool:        pool,
		logger:      slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest runs the full pipeline for one audio file. Stages run best-effort:
// each outcome is recorded independently in the Report. Transcription
// failure does not stop the store stage, which records the meeting with an
// empty transcript; only indexing, which needs the stored meeting id,
// records ErrStageSkipped when the store stage failed.
func (p *Pipeline) Ingest(ctx context.Context, audioPath, title string) Report {
	var report Report

	p.logger.Info("ingesting meeting", "audioPath", audioPath, "title", title,
		"backend", p.selection.Backend)

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		p.logger.Error("error transcribing audio", "audioPath", audioPath, "err", err)
		report.Transcribe.Err = err
	}
	report.Transcript = transcript

	// The store stage runs even when transcription failed: the meeting row
	// is kept with an empty transcript so the upload is still on record.
	// Insights start empty; they are produced at query time.
	meetingID, storeErr := p.store.InsertMeeting(ctx, title, transcript, "")
	if storeErr != nil {
		p.logger.Error("error storing meeting", "title", title, "err", storeErr)
		report.Store.Err = storeErr
	} else {
		report.MeetingID = meetingID
	}

	switch {
	case !report.Store.OK():
		// Indexing needs the meeting id, so a store failure skips it.
		report.Index.Err = ErrStageSkipped
	default:
		indexed, indexErr := p.indexTranscript(ctx, report.MeetingID, title, transcript)
		report.ChunksIndexed = indexed
		if indexErr != nil {
			p.logger.Error("error indexing transcript", "meetingID", report.MeetingID, "err", indexErr)
			report.Index.Err = indexErr
		}
	}

	p.logger.Info("ingestion finished", "meetingID", report.MeetingID,
		"success", report.Success(), "chunksIndexed", report.ChunksIndexed)

	return report
}

// indexTranscript chunks the transcript, embeds the chunks in batches on the
// worker pool, and upserts all records in one atomic write.
func (p *Pipeline) indexTranscript(ctx context.Context, meetingID int64, title, transcript string) (int, error) {
	chunks, err := chunk.ChunksFor(meetingID, transcript, p.chunkOpts...)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		p.logger.Debug("transcript produced no chunks", "meetingID", meetingID)
		return 0, nil
	}

	vectors := make([][]float32, len(chunks))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		batchErr error
	)

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := min(start+embedBatchSize, len(chunks))
		batch := chunks[start:end]
		offset := start

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, c := range batch {
				texts[i] = c.Text
			}

			embeddings, embedErr := p.selection.Embedder.EmbedTexts(ctx, texts)
			if embedErr == nil && len(embeddings) != len(texts) {
				embedErr = fmt.Errorf("embedding result mismatch. expected %d, received %d",
					len(texts), len(embeddings))
			}

			mu.Lock()
			defer mu.Unlock()
			if embedErr != nil {
				if batchErr == nil {
					batchErr = embedErr
				}
				return
			}
			copy(vectors[offset:], embeddings)
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return 0, submitErr
		}
	}

	wg.Wait()

	if batchErr != nil {
		return 0, batchErr
	}

	records := make([]core.IndexRecord, len(chunks))
	for i, c := range chunks {
		records[i] = core.IndexRecord{
			ID:       c.RecordID(),
			Vector:   vectors[i],
			Document: c.Text,
			Metadata: core.ChunkMetadata{
				Title:      title,
				MeetingID:  meetingID,
				ChunkIndex: c.ChunkIndex,
			},
		}
	}

	if err := p.index.Upsert(ctx, records...); err != nil {
		return 0, err
	}

	return len(records), nil
}

// Release releases the worker pool. The pipeline should not be used after
// calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
