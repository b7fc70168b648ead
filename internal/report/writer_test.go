package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nmvinh214/batchscribe/internal/logger"
)

func fixedClockWriter() Writer {
	w := NewWriter(logger.New("error")).(*implWriter)
	w.now = func() time.Time {
		return time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	}
	return w
}

func TestWrite(t *testing.T) {
	results := []Result{
		{ChunkFile: "chunk_001.flac", Payload: json.RawMessage(`{"text": "xin chào"}`)},
		{ChunkFile: "chunk_002.flac", Err: "endpoint returned 503: overloaded"},
		{ChunkFile: "chunk_003.flac", Payload: json.RawMessage(`{"text": "goodbye"}`)},
	}

	path := filepath.Join(t.TempDir(), "transcription_results.txt")
	rep, err := fixedClockWriter().Write(context.Background(), results, path)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if rep.Entries != 3 {
		t.Errorf("Entries = %d, want 3", rep.Entries)
	}
	if !rep.Finalized {
		t.Error("Finalized = false, want true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "Whisper LLM Transcription Results\nGenerated: 2026-08-23 10:30:00\n") {
		t.Errorf("header wrong:\n%s", content[:100])
	}
	if !strings.Contains(content, strings.Repeat("=", 80)) {
		t.Error("missing header rule")
	}
	if !strings.Contains(content, "Chunk: chunk_001.flac\n"+strings.Repeat("-", 80)+"\n") {
		t.Error("missing chunk block header")
	}
	if !strings.Contains(content, `"text": "xin chào"`) {
		t.Error("transcript JSON missing or escaped")
	}
	if !strings.Contains(content, "ERROR: endpoint returned 503: overloaded") {
		t.Error("missing error block")
	}

	// One block per chunk, in submission order.
	i1 := strings.Index(content, "Chunk: chunk_001.flac")
	i2 := strings.Index(content, "Chunk: chunk_002.flac")
	i3 := strings.Index(content, "Chunk: chunk_003.flac")
	if i1 < 0 || i2 < 0 || i3 < 0 || !(i1 < i2 && i2 < i3) {
		t.Errorf("blocks out of order: %d %d %d", i1, i2, i3)
	}
	if strings.Count(content, "Chunk: ") != 3 {
		t.Errorf("got %d blocks, want 3", strings.Count(content, "Chunk: "))
	}
}

func TestWriteReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	results := []Result{{ChunkFile: "chunk_001.flac", Payload: json.RawMessage(`{}`)}}

	if _, err := fixedClockWriter().Write(context.Background(), results, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0444 {
		t.Errorf("permissions = %o, want 444", perm)
	}
}

func TestWriteEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	rep, err := fixedClockWriter().Write(context.Background(), nil, path)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if rep.Entries != 0 {
		t.Errorf("Entries = %d, want 0", rep.Entries)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Chunk:") {
		t.Error("empty batch should produce no chunk blocks")
	}
}

func TestResultText(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"normal payload", Result{Payload: json.RawMessage(`{"text": " hello "}`)}, "hello"},
		{"error result", Result{Err: "boom"}, ""},
		{"unexpected shape", Result{Payload: json.RawMessage(`[1, 2]`)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyJSON(t *testing.T) {
	out, err := prettyJSON(json.RawMessage(`{"text":"a <b> & c"}`))
	if err != nil {
		t.Fatalf("prettyJSON() error = %v", err)
	}
	if !strings.Contains(out, `"a <b> & c"`) {
		t.Errorf("HTML characters should not be escaped, got: %s", out)
	}
	if !strings.Contains(out, "  \"text\"") {
		t.Errorf("output not indented: %s", out)
	}
}
