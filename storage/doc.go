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


// Package storage provides the persistence abstraction layer for minutemind.
//
// It defines two interfaces that decouple persistence from business logic:
//
//   - VectorIndex: the durable collection of (id, vector, document, metadata)
//     tuples supporting atomic upsert and nearest-neighbor queries scoped by
//     metadata equality. Implemented on BadgerDB in storage/badger.
//   - MeetingStore: the keyed record store for meeting rows (title,
//     transcript, insights). Implemented on SQLite in storage/sqlite.
//
// Public constructors return interface types so backends can be swapped and
// consumers can substitute test doubles without modification.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use: concurrent reads are
// allowed and concurrent writes are serialized per collection. A write is
// visible to any query that starts after the write call returns.
//
// # Context Support
//
// All methods accept context.Context for cancellation and timeout support.
package storage
