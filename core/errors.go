// Copyright 2026 Minutemind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain errors. Each maps to one failure category of the pipeline; callers
// test for them with errors.Is after wrapping.
var (
	// ErrInvalidChunkConfig indicates invalid chunking parameters,
	// such as an overlap that is not strictly smaller than the chunk size.
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// ErrNoEmbeddingBackend indicates that no embedding backend was
	// available when one was required.
	ErrNoEmbeddingBackend = errors.New("no embedding backend available")

	// ErrEmbeddingBackend indicates that an embedding backend call failed.
	ErrEmbeddingBackend = errors.New("embedding backend failure")

	// ErrIndexWrite indicates that a vector index write failed.
	ErrIndexWrite = errors.New("vector index write failed")

	// ErrIndexQuery indicates that a vector index query failed.
	ErrIndexQuery = errors.New("vector index query failed")

	// ErrTranscription indicates that the transcription collaborator failed.
	ErrTranscription = errors.New("transcription failed")

	// ErrMeetingStore indicates that the meeting record store failed.
	ErrMeetingStore = errors.New("meeting store failure")
)

// Validation errors for index records.
var (
	// ErrInvalidIndexRecord indicates an IndexRecord failed validation.
	ErrInvalidIndexRecord = errors.New("invalid index record")

	// ErrEmptyRecordID indicates the record ID field is empty.
	ErrEmptyRecordID = errors.New("record id cannot be empty")

	// ErrEmptyVector indicates the record has no embedding vector.
	ErrEmptyVector = errors.New("embedding vector cannot be empty")

	// ErrEmptyDocument indicates the record document text is empty.
	ErrEmptyDocument = errors.New("document cannot be empty")
)
