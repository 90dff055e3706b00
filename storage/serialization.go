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


package storage

import (
	"github.com/minutemind/minutemind/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// IndexRecordMUS serializes core.IndexRecord in the MUS binary format.
// Field order is part of the on-disk format and must not change.
var IndexRecordMUS = indexRecordMUS{}

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

type indexRecordMUS struct{}

func (s indexRecordMUS) Marshal(v core.IndexRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += vectorMUS.Marshal(v.Vector, bs[n:])
	n += ord.String.Marshal(v.Document, bs[n:])
	n += ord.String.Marshal(v.Metadata.Title, bs[n:])
	n += varint.Int64.Marshal(v.Metadata.MeetingID, bs[n:])
	n += varint.Int.Marshal(v.Metadata.ChunkIndex, bs[n:])
	return n
}

func (s indexRecordMUS) Unmarshal(bs []byte) (v core.IndexRecord, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Document, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata.MeetingID, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata.ChunkIndex, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexRecordMUS) Size(v core.IndexRecord) (size int) {
	size = ord.String.Size(v.ID)
	size += vectorMUS.Size(v.Vector)
	size += ord.String.Size(v.Document)
	size += ord.String.Size(v.Metadata.Title)
	size += varint.Int64.Size(v.Metadata.MeetingID)
	size += varint.Int.Size(v.Metadata.ChunkIndex)
	return size
}

func (s indexRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

// MarshalIndexRecord serializes an IndexRecord to bytes.
func MarshalIndexRecord(record *core.IndexRecord) []byte {
	buf := make([]byte, IndexRecordMUS.Size(*record))
	IndexRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalIndexRecord deserializes an IndexRecord from bytes.
func UnmarshalIndexRecord(data []byte) (*core.IndexRecord, error) {
	record, _, err := IndexRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
