package segmenter

import (
	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
	"github.com/nmvinh214/batchscribe/pkg/executor"
)

type implSegmenter struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Segmenter instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Segmenter {
	return &implSegmenter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
