package transcriber

import (
	"context"
	"encoding/json"
)

// Client submits one chunk file to the remote inference endpoint.
type Client interface {
	// Transcribe reads the chunk at chunkPath, sends it in a single
	// authenticated request, and returns the endpoint's JSON response.
	// Exactly one attempt is made per chunk.
	Transcribe(ctx context.Context, chunkPath string) (json.RawMessage, error)
}
