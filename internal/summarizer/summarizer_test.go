package summarizer

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/nmvinh214/batchscribe/internal/logger"
	"github.com/nmvinh214/batchscribe/internal/report"
)

func TestJoinTranscripts(t *testing.T) {
	results := []report.Result{
		{ChunkFile: "chunk_001.flac", Payload: json.RawMessage(`{"text": "first part"}`)},
		{ChunkFile: "chunk_002.flac", Err: "connection refused"},
		{ChunkFile: "chunk_003.flac", Payload: json.RawMessage(`{"text": "second part"}`)},
	}

	got := joinTranscripts(results)
	want := "first part\nsecond part"
	if got != want {
		t.Errorf("joinTranscripts() = %q, want %q", got, want)
	}
}

func TestJoinTranscriptsAllFailed(t *testing.T) {
	results := []report.Result{
		{ChunkFile: "chunk_001.flac", Err: "boom"},
	}
	if got := joinTranscripts(results); got != "" {
		t.Errorf("joinTranscripts() = %q, want empty", got)
	}
}

func TestSummarizeNoKeys(t *testing.T) {
	s := New(nil, "gemini-2.5-flash", logger.New("error"))
	err := s.Summarize(context.Background(), nil, filepath.Join(t.TempDir(), "summary.md"))
	if err == nil {
		t.Error("Summarize() should fail without API keys")
	}
}

func TestSummarizeNothingToDo(t *testing.T) {
	s := New([]string{"key"}, "gemini-2.5-flash", logger.New("error"))
	results := []report.Result{{ChunkFile: "chunk_001.flac", Err: "boom"}}

	// Empty transcript short-circuits before any network call.
	if err := s.Summarize(context.Background(), results, filepath.Join(t.TempDir(), "summary.md")); err != nil {
		t.Errorf("Summarize() error = %v, want nil for empty transcript", err)
	}
}

func TestRotateKey(t *testing.T) {
	s := New([]string{"a", "b", "c"}, "gemini-2.5-flash", logger.New("error")).(*implSummarizer)

	s.rotateKey()
	if s.currentKey != 1 {
		t.Errorf("currentKey = %d, want 1", s.currentKey)
	}
	s.rotateKey()
	s.rotateKey()
	if s.currentKey != 0 {
		t.Errorf("currentKey = %d, want wrap to 0", s.currentKey)
	}
}
