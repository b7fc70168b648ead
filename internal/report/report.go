package report

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Result is the outcome of submitting one chunk to the inference
// endpoint: either the endpoint's JSON payload or an error description.
type Result struct {
	ChunkFile string
	Payload   json.RawMessage
	Err       string
}

// Failed reports whether this chunk produced an error instead of a
// transcript.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Text extracts the transcript text from the payload when the endpoint
// returned the usual {"text": ...} shape. Returns "" for errors or
// unexpected payloads.
func (r Result) Text() string {
	if r.Failed() {
		return ""
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(r.Payload, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Text)
}

// Report describes the written artifact. Finalized records whether the
// read-only permission flip stuck; the filesystem bit is the secondary,
// best-effort enforcement layer.
type Report struct {
	Path      string
	Entries   int
	Finalized bool
}

// prettyJSON indents the payload with two spaces without escaping HTML
// characters, matching the readable JSON blocks of the report format.
func prettyJSON(raw json.RawMessage) (string, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
