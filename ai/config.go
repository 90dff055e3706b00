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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for the embedding backends.
type Config struct {
	// LocalHost is the base URL of the local Ollama server.
	// Example: "http://localhost:11434"
	LocalHost string

	// LocalModel is the model identifier for local embeddings.
	// Example: "all-minilm", "embeddinggemma"
	LocalModel string

	// RemoteHost is the base URL for the remote OpenAI-compatible
	// embedding API. Example: "https://api.openai.com/v1"
	RemoteHost string

	// RemoteModel is the model identifier for remote embeddings.
	// Example: "text-embedding-3-small"
	RemoteModel string

	// RemoteAPIKey is the credential for the remote backend. The remote
	// backend is considered configured only when this is non-empty.
	RemoteAPIKey string

	// ProbeTimeout bounds the startup probe call that decides whether the
	// local backend is usable. Default: 5s
	ProbeTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithLocalHost sets the local Ollama server URL.
func WithLocalHost(host string) ConfigOption {
	return func(c *Config) {
		c.LocalHost = host
	}
}

// WithLocalModel sets the local embedding model identifier.
func WithLocalModel(model string) ConfigOption {
	return func(c *Config) {
		c.LocalModel = model
	}
}

// WithRemoteHost sets the remote embedding API base URL.
func WithRemoteHost(host string) ConfigOption {
	return func(c *Config) {
		c.RemoteHost = host
	}
}

// WithRemoteModel sets the remote embedding model identifier.
func WithRemoteModel(model string) ConfigOption {
	return func(c *Config) {
		c.RemoteModel = model
	}
}

// WithRemoteAPIKey sets the remote backend credential.
func WithRemoteAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.RemoteAPIKey = key
	}
}

// WithProbeTimeout sets the startup probe timeout.
func WithProbeTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.ProbeTimeout = timeout
	}
}

// DefaultConfig returns a Config with sensible defaults for a local Ollama
// server and no remote credential.
func DefaultConfig() *Config {
	return &Config{
		LocalHost:    "http://localhost:11434",
		LocalModel:   "all-minilm",
		RemoteHost:   "https://api.openai.com/v1",
		RemoteModel:  "text-embedding-3-small",
		ProbeTimeout: 5 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. The remote
// host gets a /v1 suffix if missing, as required by OpenAI-compatible APIs;
// the local Ollama host must not carry one.
func (c *Config) Normalize() {
	c.LocalHost = strings.TrimSuffix(strings.TrimSuffix(c.LocalHost, "/"), "/v1")
	if c.RemoteHost != "" && !strings.HasSuffix(c.RemoteHost, "/v1") {
		c.RemoteHost = strings.TrimSuffix(c.RemoteHost, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.LocalHost == "" {
		return errors.New("ai config: LocalHost is required")
	}
	if c.LocalModel == "" {
		return errors.New("ai config: LocalModel is required")
	}
	if c.RemoteAPIKey != "" {
		if c.RemoteHost == "" {
			return errors.New("ai config: RemoteHost is required when a remote API key is set")
		}
		if c.RemoteModel == "" {
			return errors.New("ai config: RemoteModel is required when a remote API key is set")
		}
	}
	if c.ProbeTimeout <= 0 {
		return errors.New("ai config: ProbeTimeout must be positive")
	}
	return nil
}
