package summarizer

import (
	"context"

	"github.com/nmvinh214/batchscribe/internal/report"
)

// Summarizer turns a batch's transcripts into an LLM-generated markdown
// summary written next to the report.
type Summarizer interface {
	Summarize(ctx context.Context, results []report.Result, destPath string) error
}
