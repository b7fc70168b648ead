package summarizer

import (
	"github.com/nmvinh214/batchscribe/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
