package report

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nmvinh214/batchscribe/internal/logger"
)

const (
	titleLine  = "Whisper LLM Transcription Results"
	timeLayout = "2006-01-02 15:04:05"
)

// Writer serializes batch results into the read-only report file.
type Writer interface {
	Write(ctx context.Context, results []Result, path string) (*Report, error)
}

type implWriter struct {
	logger logger.Logger
	now    func() time.Time
}

// NewWriter creates a new Writer instance
func NewWriter(log logger.Logger) Writer {
	return &implWriter{
		logger: log,
		now:    time.Now,
	}
}

// Write renders one block per result, in submission order, then marks
// the file read-only. The permission flip is best-effort: a failure is
// logged and reflected in Report.Finalized, not returned as an error.
func (w *implWriter) Write(ctx context.Context, results []Result, path string) (*Report, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleLine)
	fmt.Fprintf(&b, "Generated: %s\n", w.now().Format(timeLayout))
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	for _, r := range results {
		fmt.Fprintf(&b, "Chunk: %s\n", r.ChunkFile)
		b.WriteString(strings.Repeat("-", 80) + "\n")

		if r.Failed() {
			fmt.Fprintf(&b, "ERROR: %s\n", r.Err)
		} else {
			pretty, err := prettyJSON(r.Payload)
			if err != nil {
				// The payload was validated on receipt; treat a render
				// failure like a transmission error entry.
				fmt.Fprintf(&b, "ERROR: render transcript: %v\n", err)
			} else {
				b.WriteString(pretty)
			}
		}

		b.WriteString("\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	rep := &Report{Path: path, Entries: len(results)}

	if err := os.Chmod(path, 0444); err != nil {
		w.logger.Warn(ctx, "Failed to set report read-only: %v", err)
	} else {
		rep.Finalized = true
		w.logger.Info(ctx, "File permissions set to read-only.")
	}

	return rep, nil
}
