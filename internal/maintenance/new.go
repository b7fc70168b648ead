package maintenance

import (
	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
)

type implMaintenance struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Maintenance instance
func New(cfg *config.Config, log logger.Logger) Maintenance {
	return &implMaintenance{
		cfg:    cfg,
		logger: log,
	}
}
