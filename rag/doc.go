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


// Package rag answers free-text questions about one meeting using
// retrieval-augmented generation.
//
// The Engine embeds the question, retrieves the nearest transcript chunks
// scoped to the meeting, assembles a bounded context, and asks an external
// completion service to generate a grounded answer. Retrieval failures are
// hard errors; completion failures are deliberately downgraded to
// user-visible text, because the retrieved context still has value when
// generation is unavailable.
package rag
