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


package minutemind

import (
	"context"
	"log/slog"

	"github.com/minutemind/minutemind/ai"
	"github.com/minutemind/minutemind/ai/ollama"
	"github.com/minutemind/minutemind/ai/openai"
	"github.com/minutemind/minutemind/config"
	"github.com/minutemind/minutemind/ingestion"
	"github.com/minutemind/minutemind/rag"
	"github.com/minutemind/minutemind/storage"
	"github.com/minutemind/minutemind/storage/badger"
	"github.com/minutemind/minutemind/storage/sqlite"
	"github.com/minutemind/minutemind/transcribe"
)

// Assistant is the composition root: it owns the meeting store, the vector
// index, the embedding backend selection, and the completion client, and
// hands out the pipeline and query engine built on them.
type Assistant struct {
	cfg        *config.Config
	store      storage.MeetingStore
	index      storage.VectorIndex
	selection  ai.Selection
	completion rag.CompletionClient
	logger     *slog.Logger
}

// DetectBackend probes the available embedding backends once and pins the
// result for the process lifetime. Preference order: local Ollama server
// (accepted if a probe embedding succeeds within the probe timeout), then a
// remote API when a key is configured, then the permanently-failed backend.
func DetectBackend(ctx context.Context, cfg *ai.Config) ai.Selection {
	logger := slog.Default().With("component", "backend-detect")

	if local, err := ollama.NewEmbedder(cfg); err == nil {
		probeCtx, cancel := context.WithTimeout(ctx, cfg.ProbeTimeout)
		_, probeErr := local.EmbedText(probeCtx, "probe")
		cancel()
		if probeErr == nil {
			logger.Info("using local embedding backend",
				"host", cfg.LocalHost, "model", cfg.LocalModel)
			return ai.Selection{Backend: ai.BackendLocal, Embedder: local}
		}
		logger.Warn("local embedding backend unavailable", "err", probeErr)
	}

	if cfg.RemoteAPIKey != "" {
		remote, err := openai.NewEmbedder(cfg)
		if err == nil {
			logger.Info("using remote embedding backend",
				"host", cfg.RemoteHost, "model", cfg.RemoteModel)
			return ai.Selection{Backend: ai.BackendRemote, Embedder: remote}
		}
		logger.Warn("remote embedding backend unavailable", "err", err)
	}

	logger.Warn("no embedding backend available; ingestion and queries will fail")
	return ai.Selection{Backend: ai.BackendNone, Embedder: ai.NewNoneEmbedder()}
}

// NewAssistant opens all persistent state and detects the embedding backend.
// Call Close when done.
func NewAssistant(ctx context.Context, cfg *config.Config) (*Assistant, error) {
	aiCfg := cfg.AIConfig()
	if err := aiCfg.Validate(); err != nil {
		return nil, err
	}

	store, err := sqlite.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, err
	}

	index, err := badger.OpenIndex(cfg.Storage.IndexPath, false)
	if err != nil {
		store.Close()
		return nil, err
	}

	selection := DetectBackend(ctx, aiCfg)

	completion := rag.NewOllamaClient(cfg.Completion.Host, cfg.Completion.Model,
		rag.WithTimeout(cfg.CompletionTimeout()))

	return &Assistant{
		cfg:        cfg,
		store:      store,
		index:      index,
		selection:  selection,
		completion: completion,
		logger:     slog.Default(),
	}, nil
}

// NewIngestionPipeline builds an ingestion pipeline on the assistant's
// store, index, and embedding backend. The caller releases it.
func (a *Assistant) NewIngestionPipeline() (*ingestion.Pipeline, error) {
	transcriber := transcribe.NewEngine(a.cfg.Whisper.BinPath, a.cfg.Whisper.ModelPath)
	return ingestion.NewPipeline(transcriber, a.store, a.index, a.selection,
		ingestion.WithChunkOptions(a.cfg.ChunkOptions()...))
}

// NewEngine builds a query engine on the assistant's index, embedder, and
// completion client.
func (a *Assistant) NewEngine() (*rag.Engine, error) {
	return rag.NewEngine(a.index, a.selection.Embedder, a.completion)
}

// Store returns the meeting record store.
func (a *Assistant) Store() storage.MeetingStore {
	return a.store
}

// Index returns the vector index.
func (a *Assistant) Index() storage.VectorIndex {
	return a.index
}

// Backend returns the embedding backend selected at startup.
func (a *Assistant) Backend() ai.ActiveBackend {
	return a.selection.Backend
}

// Close tears down owned resources in reverse construction order.
func (a *Assistant) Close() error {
	if err := a.index.Close(); err != nil {
		a.logger.Error("error closing vector index", "err", err)
		return err
	}
	if err := a.store.Close(); err != nil {
		a.logger.Error("error closing meeting store", "err", err)
		return err
	}
	return nil
}
