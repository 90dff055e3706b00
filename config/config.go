// Package config loads and validates the application configuration from a
// YAML file, applying defaults for anything left unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/minutemind/minutemind/ai"
	"github.com/minutemind/minutemind/chunk"
)

// Config holds the application configuration.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Completion CompletionConfig `yaml:"completion"`
	Chunking   ChunkingConfig   `yaml:"chunking,omitempty"`
}

// StorageConfig holds filesystem paths for persistent state.
type StorageConfig struct {
	// DatabasePath is the SQLite meeting database file.
	// If empty, uses ~/.minutemind/meetings.db
	DatabasePath string `yaml:"database_path,omitempty"`

	// IndexPath is the vector index directory.
	// If empty, uses ~/.minutemind/index
	IndexPath string `yaml:"index_path,omitempty"`

	// UploadDir is where ingested audio files are kept.
	// If empty, uses ~/.minutemind/uploads
	UploadDir string `yaml:"upload_dir,omitempty"`
}

// WhisperConfig holds the transcription engine configuration.
type WhisperConfig struct {
	// BinPath is the whisper-cli executable.
	BinPath string `yaml:"bin_path"`

	// ModelPath is the whisper model file.
	ModelPath string `yaml:"model_path"`
}

// EmbeddingConfig holds embedding backend configuration.
type EmbeddingConfig struct {
	LocalHost  string `yaml:"local_host,omitempty"`
	LocalModel string `yaml:"local_model,omitempty"`

	RemoteHost   string `yaml:"remote_host,omitempty"`
	RemoteModel  string `yaml:"remote_model,omitempty"`
	RemoteAPIKey string `yaml:"remote_api_key,omitempty"`

	// ProbeTimeoutSeconds bounds the startup probe that decides whether
	// the local backend is usable.
	ProbeTimeoutSeconds int `yaml:"probe_timeout_seconds,omitempty"`
}

// CompletionConfig holds the completion service configuration.
type CompletionConfig struct {
	Host  string `yaml:"host,omitempty"`
	Model string `yaml:"model,omitempty"`

	// TimeoutSeconds bounds one completion call. Default 300.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// ChunkingConfig holds transcript chunking parameters.
type ChunkingConfig struct {
	ChunkSize int `yaml:"chunk_size,omitempty"`
	Overlap   int `yaml:"overlap,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the default config file,
// ~/.minutemind/config.yaml. A missing file yields the defaults.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFromFile(filepath.Join(homeDir, ".minutemind", "config.yaml"))
}

// LoadFromFile loads configuration from a specific file. A missing file is
// not an error: the defaults are returned, so a fresh install works without
// any configuration.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(expandPath(path))
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	dataDir := defaultDataDir()

	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = filepath.Join(dataDir, "meetings.db")
	}
	if c.Storage.IndexPath == "" {
		c.Storage.IndexPath = filepath.Join(dataDir, "index")
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = filepath.Join(dataDir, "uploads")
	}

	if c.Whisper.BinPath == "" {
		c.Whisper.BinPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = filepath.Join(dataDir, "models", "ggml-base.en.bin")
	}

	aiDefaults := ai.DefaultConfig()
	if c.Embedding.LocalHost == "" {
		c.Embedding.LocalHost = aiDefaults.LocalHost
	}
	if c.Embedding.LocalModel == "" {
		c.Embedding.LocalModel = aiDefaults.LocalModel
	}
	if c.Embedding.RemoteHost == "" {
		c.Embedding.RemoteHost = aiDefaults.RemoteHost
	}
	if c.Embedding.RemoteModel == "" {
		c.Embedding.RemoteModel = aiDefaults.RemoteModel
	}
	if c.Embedding.ProbeTimeoutSeconds == 0 {
		c.Embedding.ProbeTimeoutSeconds = int(aiDefaults.ProbeTimeout / time.Second)
	}

	if c.Completion.Host == "" {
		c.Completion.Host = c.Embedding.LocalHost
	}
	if c.Completion.Model == "" {
		c.Completion.Model = "llama3"
	}
	if c.Completion.TimeoutSeconds == 0 {
		c.Completion.TimeoutSeconds = 300
	}

	// Zero means unset, so an overlap of exactly 0 cannot be configured.
	if c.Chunking.ChunkSize == 0 {
		c.Chunking.ChunkSize = chunk.DefaultChunkSize
	}
	if c.Chunking.Overlap == 0 {
		c.Chunking.Overlap = chunk.DefaultOverlap
	}

	c.Storage.DatabasePath = expandPath(c.Storage.DatabasePath)
	c.Storage.IndexPath = expandPath(c.Storage.IndexPath)
	c.Storage.UploadDir = expandPath(c.Storage.UploadDir)
	c.Whisper.BinPath = expandPath(c.Whisper.BinPath)
	c.Whisper.ModelPath = expandPath(c.Whisper.ModelPath)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Chunking.ChunkSize <= 0 {
		return fmt.Errorf("chunking.chunk_size must be positive, got %d", c.Chunking.ChunkSize)
	}
	if c.Chunking.Overlap < 0 {
		return fmt.Errorf("chunking.overlap must not be negative, got %d", c.Chunking.Overlap)
	}
	if c.Chunking.Overlap >= c.Chunking.ChunkSize {
		return fmt.Errorf("chunking.overlap (%d) must be smaller than chunking.chunk_size (%d)",
			c.Chunking.Overlap, c.Chunking.ChunkSize)
	}
	if c.Completion.TimeoutSeconds <= 0 {
		return fmt.Errorf("completion.timeout_seconds must be positive, got %d", c.Completion.TimeoutSeconds)
	}
	if c.Embedding.ProbeTimeoutSeconds <= 0 {
		return fmt.Errorf("embedding.probe_timeout_seconds must be positive, got %d", c.Embedding.ProbeTimeoutSeconds)
	}
	return nil
}

// AIConfig converts the embedding section to the ai package's configuration.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithLocalHost(c.Embedding.LocalHost),
		ai.WithLocalModel(c.Embedding.LocalModel),
		ai.WithRemoteHost(c.Embedding.RemoteHost),
		ai.WithRemoteModel(c.Embedding.RemoteModel),
		ai.WithRemoteAPIKey(c.Embedding.RemoteAPIKey),
		ai.WithProbeTimeout(time.Duration(c.Embedding.ProbeTimeoutSeconds)*time.Second),
	)
}

// ChunkOptions converts the chunking section to chunk package options.
func (c *Config) ChunkOptions() []chunk.Option {
	return []chunk.Option{
		chunk.WithChunkSize(c.Chunking.ChunkSize),
		chunk.WithOverlap(c.Chunking.Overlap),
	}
}

// CompletionTimeout returns the completion timeout as a duration.
func (c *Config) CompletionTimeout() time.Duration {
	return time.Duration(c.Completion.TimeoutSeconds) * time.Second
}

// ProbeTimeout returns the embedding probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Embedding.ProbeTimeoutSeconds) * time.Second
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".minutemind"
	}
	return filepath.Join(homeDir, ".minutemind")
}

// expandPath expands a leading ~ or $HOME to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "$HOME/") || path == "$HOME" {
		homeDir := os.Getenv("HOME")
		if homeDir == "" {
			var err error
			homeDir, err = os.UserHomeDir()
			if err != nil {
				return path
			}
		}
		if path == "$HOME" {
			return homeDir
		}
		return filepath.Join(homeDir, path[6:])
	}

	if strings.HasPrefix(path, "~/") || path == "~" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return homeDir
		}
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
