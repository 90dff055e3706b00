package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	newContext := func(level string) *cli.Context {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: level},
			},
		}
		var captured *cli.Context
		app.Action = func(c *cli.Context) error {
			captured = c
			return nil
		}
		require.NoError(t, app.Run([]string{"minutemind"}))
		return captured
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			assert.NoError(t, setupLogger(newContext(level)), "level %s", level)
		}
	})

	t.Run("uppercase accepted", func(t *testing.T) {
		assert.NoError(t, setupLogger(newContext("DEBUG")))
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		err := setupLogger(newContext("verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verbose")
	})
}

func TestPersistUpload(t *testing.T) {
	t.Run("copies into upload dir", func(t *testing.T) {
		srcDir := t.TempDir()
		uploadDir := filepath.Join(t.TempDir(), "uploads")

		srcPath := filepath.Join(srcDir, "standup.wav")
		require.NoError(t, os.WriteFile(srcPath, []byte("audio bytes"), 0o644))

		storedPath, err := persistUpload(uploadDir, srcPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(uploadDir, "standup.wav"), storedPath)

		data, err := os.ReadFile(storedPath)
		require.NoError(t, err)
		assert.Equal(t, "audio bytes", string(data))
	})

	t.Run("missing source fails", func(t *testing.T) {
		_, err := persistUpload(t.TempDir(), "/nonexistent/audio.wav")
		assert.Error(t, err)
	})
}

func TestIngestCommandRequiresArgument(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{Name: "ingest", Action: ingestCommand},
		},
	}

	err := app.Run([]string{"minutemind", "ingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio file")
}
