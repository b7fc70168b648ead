package transcriber

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
)

func writeChunk(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chunk_001.flac")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestClient(url string) Client {
	ep := &config.Endpoint{URL: url, Token: "hf_test_token"}
	return New(ep, logger.New("error"))
}

func TestTranscribe(t *testing.T) {
	audio := []byte("fLaC fake audio bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %v, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer hf_test_token" {
			t.Errorf("Authorization = %v", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %v", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %v", got)
		}

		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Inputs)
		if err != nil {
			t.Errorf("inputs is not valid base64: %v", err)
		}
		if string(decoded) != string(audio) {
			t.Error("inputs does not round-trip the chunk bytes")
		}
		if req.Parameters == nil {
			t.Error("parameters object missing")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "hello world"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	payload, err := client.Transcribe(context.Background(), writeChunk(t, audio))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if out.Text != "hello world" {
		t.Errorf("text = %v, want hello world", out.Text)
	}
}

func TestTranscribeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model is overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Transcribe(context.Background(), writeChunk(t, []byte("x")))
	if err == nil {
		t.Fatal("Transcribe() should fail on 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error = %v, want status code in message", err)
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Errorf("error = %v, want response body in message", err)
	}
}

func TestTranscribeInvalidJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.Transcribe(context.Background(), writeChunk(t, []byte("x"))); err == nil {
		t.Fatal("Transcribe() should fail on non-JSON body")
	}
}

func TestTranscribeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := newTestClient(srv.URL)
	if _, err := client.Transcribe(context.Background(), writeChunk(t, []byte("x"))); err == nil {
		t.Fatal("Transcribe() should fail when the endpoint is unreachable")
	}
}

func TestTranscribeMissingChunk(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	if _, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.flac")); err == nil {
		t.Fatal("Transcribe() should fail when the chunk file is missing")
	}
}
