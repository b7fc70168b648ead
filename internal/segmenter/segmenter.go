package segmenter

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// span is one planned chunk boundary in integer milliseconds.
type span struct {
	startMS  int64
	lengthMS int64
}

// chunkSpans plans the chunk boundaries for a recording of totalMS
// milliseconds cut into chunkMS-long pieces. Chunk i covers
// [i*chunkMS, (i+1)*chunkMS) with the final span clamped to totalMS,
// so the count is ceil(total/chunk) and the last span carries the
// remainder when the division is not exact.
func chunkSpans(totalMS, chunkMS int64) []span {
	if totalMS <= 0 || chunkMS <= 0 {
		return nil
	}

	count := totalMS / chunkMS
	if totalMS%chunkMS != 0 {
		count++
	}

	spans := make([]span, 0, count)
	for i := int64(0); i < count; i++ {
		start := i * chunkMS
		end := start + chunkMS
		if end > totalMS {
			end = totalMS
		}
		spans = append(spans, span{startMS: start, lengthMS: end - start})
	}
	return spans
}

// Segment slices recordingPath into fixed-length FLAC chunks under outDir.
func (s *implSegmenter) Segment(ctx context.Context, recordingPath, outDir string) ([]Chunk, error) {
	recording := filepath.Base(recordingPath)

	s.logger.Info(ctx, "Loading %s...", recordingPath)

	totalMS, err := s.probeDurationMS(ctx, recordingPath)
	if err != nil {
		return nil, fmt.Errorf("probe duration: %w", err)
	}

	chunkMS := int64(s.cfg.Chunking.LengthSeconds) * 1000
	spans := chunkSpans(totalMS, chunkMS)

	s.logger.Info(ctx, "Total duration: %.2f seconds", float64(totalMS)/1000)
	s.logger.Info(ctx, "Generating %d chunks...", len(spans))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	chunks := make([]Chunk, 0, len(spans))
	for i, sp := range spans {
		outPath := filepath.Join(outDir, fmt.Sprintf("chunk_%03d.flac", i+1))

		if err := s.exportChunk(ctx, recordingPath, outPath, sp); err != nil {
			return nil, fmt.Errorf("export chunk %d: %w", i+1, err)
		}

		s.logger.Info(ctx, "Exported: %s", outPath)
		chunks = append(chunks, Chunk{
			Recording: recording,
			Index:     i + 1,
			Path:      outPath,
			Start:     time.Duration(sp.startMS) * time.Millisecond,
			Length:    time.Duration(sp.lengthMS) * time.Millisecond,
		})
	}

	s.logger.Info(ctx, "Chunking complete.")
	return chunks, nil
}

// probeDurationMS reads the recording duration via ffprobe. A probe
// failure means the file could not be parsed as FLAC and is treated as
// the recording's decode error.
func (s *implSegmenter) probeDurationMS(ctx context.Context, recordingPath string) (int64, error) {
	out, err := s.executor.Execute(ctx, s.cfg.FFmpeg.ProbeBinary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		recordingPath,
	)
	if err != nil {
		return 0, err
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", strings.TrimSpace(out), err)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("recording has no audible duration")
	}

	return int64(math.Round(seconds * 1000)), nil
}

// exportChunk cuts one span out of the recording. FLAC re-encoding is
// lossless, so concatenating the chunks reproduces the source samples.
func (s *implSegmenter) exportChunk(ctx context.Context, recordingPath, outPath string, sp span) error {
	args := []string{
		"-i", recordingPath,
		"-ss", formatMS(sp.startMS),
		"-t", formatMS(sp.lengthMS),
		"-c:a", "flac",
		"-y",
		outPath,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.FFmpeg.Binary, args...); err != nil {
		return fmt.Errorf("ffmpeg slice: %w", err)
	}
	return nil
}

// formatMS renders milliseconds as a seconds value ffmpeg accepts, e.g.
// 62500 -> "62.500".
func formatMS(ms int64) string {
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}
