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


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/minutemind/minutemind"
	"github.com/minutemind/minutemind/config"
)

func main() {
	app := &cli.App{
		Name:  "minutemind",
		Usage: "Meeting transcription, indexing, and grounded Q&A",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default ~/.minutemind/config.yaml)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Transcribe, store, and index a meeting recording",
				ArgsUsage: "<audio-file>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "title",
						Aliases: []string{"t"},
						Usage:   "Meeting title (default: audio file name)",
					},
				},
			},
			{
				Name:   "query",
				Usage:  "Ask a question about a stored meeting",
				Action: queryCommand,
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "meeting-id",
						Aliases:  []string{"m"},
						Usage:    "Meeting id to query",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "question",
						Aliases:  []string{"q"},
						Usage:    "Question to answer from the meeting transcript",
						Required: true,
					},
				},
			},
			{
				Name:   "records",
				Usage:  "List stored meetings",
				Action: recordsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func openAssistant(c *cli.Context) (*minutemind.Assistant, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return minutemind.NewAssistant(c.Context, cfg)
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one audio file argument")
	}
	audioPath := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	assistant, err := minutemind.NewAssistant(c.Context, cfg)
	if err != nil {
		return err
	}
	defer assistant.Close()

	// Keep a copy of the recording alongside the rest of the state.
	storedPath, err := persistUpload(cfg.Storage.UploadDir, audioPath)
	if err != nil {
		return err
	}

	title := c.String("title")
	if title == "" {
		title = filepath.Base(audioPath)
	}

	pipeline, err := assistant.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report := pipeline.Ingest(c.Context, storedPath, title)

	if !report.Success() {
		return fmt.Errorf("ingestion failed: %w", report.Err())
	}

	fmt.Printf("Meeting %d (%q) ingested: %d chunks indexed\n",
		report.MeetingID, title, report.ChunksIndexed)
	if report.Index.Err != nil {
		fmt.Printf("Warning: indexing failed, the meeting is stored but not searchable: %v\n",
			report.Index.Err)
	}
	return nil
}

func queryCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	engine, err := assistant.NewEngine()
	if err != nil {
		return err
	}

	answer, err := engine.Answer(c.Context, c.Int64("meeting-id"), c.String("question"))
	if err != nil {
		return err
	}

	fmt.Println(answer.Answer)
	return nil
}

func recordsCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	meetings, err := assistant.Store().ListMeetings(c.Context)
	if err != nil {
		return err
	}

	if len(meetings) == 0 {
		fmt.Println("No meetings stored.")
		return nil
	}

	for _, m := range meetings {
		chunks, countErr := assistant.Index().Count(c.Context, m.ID)
		if countErr != nil {
			chunks = 0
		}
		fmt.Printf("%d\t%s\t(%d transcript chars, %d chunks indexed)\n",
			m.ID, m.Title, len(m.Transcript), chunks)
	}
	return nil
}

// persistUpload copies the audio file into the upload directory and returns
// the stored path.
func persistUpload(uploadDir, audioPath string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	src, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer src.Close()

	storedPath := filepath.Join(uploadDir, filepath.Base(audioPath))
	dst, err := os.Create(storedPath)
	if err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	return storedPath, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
