package pipeline

import (
	"context"

	"github.com/nmvinh214/batchscribe/internal/report"
)

// Summary describes one completed batch run.
type Summary struct {
	RunID      string
	Recordings int
	Skipped    int
	Chunks     int
	Failures   int
	Report     *report.Report
}

// Pipeline runs one batch: discover recordings, segment them all, then
// transcribe every chunk in order and write the report.
type Pipeline interface {
	Run(ctx context.Context) (*Summary, error)
}
