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

import "fmt"

// ValidateIndexRecord validates an IndexRecord before it is written to the
// vector index.
//
// Validation rules:
//   - ID must not be empty and must match the id derived from its metadata
//   - Vector must not be empty (an empty vector would corrupt
//     nearest-neighbor comparisons downstream)
//   - Document must not be empty
func ValidateIndexRecord(record *IndexRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidIndexRecord)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIndexRecord, ErrEmptyRecordID)
	}

	derived := TranscriptChunk{
		MeetingID:  record.Metadata.MeetingID,
		ChunkIndex: record.Metadata.ChunkIndex,
	}.RecordID()
	if record.ID != derived {
		return fmt.Errorf("%w: id %q does not match metadata-derived id %q",
			ErrInvalidIndexRecord, record.ID, derived)
	}

	if len(record.Vector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidIndexRecord, ErrEmptyVector)
	}

	if record.Document == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIndexRecord, ErrEmptyDocument)
	}

	return nil
}
