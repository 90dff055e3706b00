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


// Package ai provides abstractions for the embedding services used by the
// ingestion and retrieval pipeline.
//
// The package defines the Embedder interface together with the typed backend
// selection model: exactly one embedding backend is chosen at process start
// (local Ollama server, remote OpenAI-compatible API, or none) and pinned for
// the lifetime of the process. Pinning matters because all vectors stored in
// a single index must share one dimension and one distance calibration;
// switching backends mid-flight would silently corrupt nearest-neighbor
// comparisons.
//
// # Implementation Packages
//
//   - ai/ollama: local embedding backend via an Ollama server
//   - ai/openai: remote embedding backend via an OpenAI-compatible API
//   - ai/mock:   deterministic test doubles, no external dependencies
//
// Public constructors (ollama.NewEmbedder, openai.NewEmbedder) return the
// ai.Embedder interface to enforce abstraction; mock constructors return
// concrete types so tests can inject behavior and make assertions.
package ai
