// Package transcribe wraps an external batch transcription engine.
//
// The engine is an opaque collaborator: it is handed an audio file path and
// a model artifact, and success means a companion text file appearing beside
// the audio file. Any non-zero exit or missing output file is a failure.
package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/minutemind/minutemind/core"
)

// Transcriber converts an audio file into transcript text.
type Transcriber interface {
	// Transcribe runs the engine on the audio file and returns the
	// transcript text. Errors wrap core.ErrTranscription.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Engine invokes a whisper.cpp-style command-line transcriber.
type Engine struct {
	binPath   string
	modelPath string
	logger    *slog.Logger
}

var _ Transcriber = (*Engine)(nil)

// NewEngine creates a transcription engine for the given binary and model
// artifact paths.
func NewEngine(binPath, modelPath string) *Engine {
	return &Engine{
		binPath:   binPath,
		modelPath: modelPath,
		logger:    slog.Default().With("component", "transcriber"),
	}
}

// Transcribe implements Transcriber. The engine is expected to write
// "<audioPath>.txt" on success.
func (e *Engine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := []string{"-m", e.modelPath, "-f", audioPath, "-otxt"}
	e.logger.Info("running transcription", "bin", e.binPath, "audio", audioPath)

	cmd := exec.CommandContext(ctx, e.binPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		e.logger.Error("transcription command failed", "err", err,
			"output", strings.TrimSpace(string(output)))
		return "", fmt.Errorf("%w: engine exited with error: %w", core.ErrTranscription, err)
	}

	transcriptPath := audioPath + ".txt"
	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		e.logger.Error("transcript output missing", "path", transcriptPath, "err", err)
		return "", fmt.Errorf("%w: output missing at %s: %w", core.ErrTranscription, transcriptPath, err)
	}

	return string(data), nil
}
