package pipeline

import (
	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
	"github.com/nmvinh214/batchscribe/internal/report"
	"github.com/nmvinh214/batchscribe/internal/segmenter"
	"github.com/nmvinh214/batchscribe/internal/summarizer"
	"github.com/nmvinh214/batchscribe/internal/transcriber"
)

type implPipeline struct {
	cfg        *config.Config
	segmenter  segmenter.Segmenter
	client     transcriber.Client
	writer     report.Writer
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Pipeline instance. summ may be nil when no summary
// is configured.
func New(cfg *config.Config, seg segmenter.Segmenter, client transcriber.Client, writer report.Writer, summ summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		segmenter:  seg,
		client:     client,
		writer:     writer,
		summarizer: summ,
		logger:     log,
	}
}
