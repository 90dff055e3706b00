package transcribe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/minutemind/minutemind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStubEngine writes an executable shell script standing in for the
// transcription binary.
func writeStubEngine(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub engine scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "whisper-stub")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755)
	require.NoError(t, err)
	return path
}

func TestEngine_Transcribe(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "meeting.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("fake audio"), 0644))

	// The stub writes the companion transcript next to its -f argument,
	// like whisper-cli with -otxt does.
	bin := writeStubEngine(t, `
while [ "$1" != "-f" ]; do shift; done
printf 'We agreed to ship v2.' > "$2.txt"
`)

	engine := NewEngine(bin, "model.bin")
	transcript, err := engine.Transcribe(context.Background(), audioPath)
	require.NoError(t, err)
	assert.Equal(t, "We agreed to ship v2.", transcript)
}

func TestEngine_Transcribe_NonZeroExit(t *testing.T) {
	bin := writeStubEngine(t, "exit 3")

	engine := NewEngine(bin, "model.bin")
	_, err := engine.Transcribe(context.Background(), filepath.Join(t.TempDir(), "a.wav"))
	assert.ErrorIs(t, err, core.ErrTranscription)
}

func TestEngine_Transcribe_MissingOutput(t *testing.T) {
	// Engine exits successfully but never writes the transcript file.
	bin := writeStubEngine(t, "exit 0")

	engine := NewEngine(bin, "model.bin")
	_, err := engine.Transcribe(context.Background(), filepath.Join(t.TempDir(), "a.wav"))
	assert.ErrorIs(t, err, core.ErrTranscription)
}

func TestEngine_Transcribe_MissingBinary(t *testing.T) {
	engine := NewEngine(filepath.Join(t.TempDir(), "does-not-exist"), "model.bin")
	_, err := engine.Transcribe(context.Background(), "a.wav")
	assert.ErrorIs(t, err, core.ErrTranscription)
}
