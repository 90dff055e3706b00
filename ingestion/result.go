package ingestion

import "errors"

// StageResult records the outcome of one pipeline stage.
type StageResult struct {
	Err error
}

// OK reports whether the stage completed.
func (s StageResult) OK() bool {
	return s.Err == nil
}

// Skipped reports whether the stage never ran because a dependency failed.
func (s StageResult) Skipped() bool {
	return errors.Is(s.Err, ErrStageSkipped)
}

// Report is the per-stage outcome of one ingestion run.
type Report struct {
	// MeetingID is the stored meeting's id; zero when the store stage failed.
	MeetingID int64

	// Transcript is the transcribed text; empty when transcription failed.
	Transcript string

	// ChunksIndexed is the number of transcript chunks written to the index.
	ChunksIndexed int

	Transcribe StageResult
	Store      StageResult
	Index      StageResult
}

// Success reports whether the meeting was transcribed and stored. Indexing
// is reported separately: a meeting whose chunks could not be embedded is
// still recorded and can be re-indexed later.
func (r Report) Success() bool {
	return r.Transcribe.OK() && r.Store.OK()
}

// Err returns the first stage failure in pipeline order, or nil.
func (r Report) Err() error {
	for _, stage := range []StageResult{r.Transcribe, r.Store, r.Index} {
		if stage.Err != nil {
			return stage.Err
		}
	}
	return nil
}
