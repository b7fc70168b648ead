package transcriber

import (
	"net/http"

	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
)

type implClient struct {
	endpoint *config.Endpoint
	client   *http.Client
	logger   logger.Logger
}

// New creates a new Client instance. The endpoint settings are resolved
// once at startup and held by reference; nothing reads the environment
// per request.
func New(endpoint *config.Endpoint, log logger.Logger) Client {
	return &implClient{
		endpoint: endpoint,
		client:   http.DefaultClient,
		logger:   log,
	}
}
