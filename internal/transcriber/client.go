package transcriber

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// inferenceRequest is the wire format the endpoint expects: the chunk's
// bytes as a base64 string plus an empty parameters object.
type inferenceRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters"`
}

// Transcribe performs one synchronous request for one chunk.
func (c *implClient) Transcribe(ctx context.Context, chunkPath string) (json.RawMessage, error) {
	data, err := os.ReadFile(chunkPath)
	if err != nil {
		return nil, fmt.Errorf("read chunk: %w", err)
	}

	payload := inferenceRequest{
		Inputs:     base64.StdEncoding.EncodeToString(data),
		Parameters: map[string]any{},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	c.logger.Debug(ctx, "Submitting %s (%d bytes encoded)", chunkPath, len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.endpoint.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("endpoint returned invalid JSON")
	}

	return json.RawMessage(respBody), nil
}
