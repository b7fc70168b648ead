package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nmvinh214/batchscribe/internal/report"
	"github.com/nmvinh214/batchscribe/internal/segmenter"
)

var (
	// ErrAudioDirMissing means the configured audio folder does not exist.
	ErrAudioDirMissing = errors.New("audio folder not found")
	// ErrNoRecordings means the audio folder holds no eligible FLAC files.
	ErrNoRecordings = errors.New("no FLAC files found")
)

// Run executes one batch over every recording present at start time.
func (p *implPipeline) Run(ctx context.Context) (*Summary, error) {
	startTime := time.Now()
	summary := &Summary{RunID: uuid.NewString()}

	p.logger.Info(ctx, "Starting batch run %s", summary.RunID)

	recordings, err := p.discoverRecordings()
	if err != nil {
		return nil, err
	}
	summary.Recordings = len(recordings)

	p.logger.Info(ctx, "Found %d FLAC file(s) to process.", len(recordings))

	// Segment everything first; transcription only starts once the full
	// chunk list across all recordings is known.
	var allChunks []segmenter.Chunk
	for _, rec := range recordings {
		inputPath := filepath.Join(p.cfg.Paths.Audio, rec)
		outDir := filepath.Join(p.cfg.Paths.Chunks, strings.TrimSuffix(rec, filepath.Ext(rec)))

		p.logger.Info(ctx, "Processing: %s", rec)

		chunks, err := p.segmenter.Segment(ctx, inputPath, outDir)
		if err != nil {
			// One bad recording must not sink the batch.
			p.logger.Error(ctx, "Skipping %s: %v", rec, err)
			summary.Skipped++
			continue
		}
		allChunks = append(allChunks, chunks...)
	}

	summary.Chunks = len(allChunks)
	if len(allChunks) == 0 {
		p.logger.Warn(ctx, "No chunks were created.")
		return summary, nil
	}

	results := p.transcribeChunks(ctx, allChunks)
	for _, r := range results {
		if r.Failed() {
			summary.Failures++
		}
	}

	p.logger.Info(ctx, "Transcription complete. Writing results to %s...", p.cfg.Paths.Report)

	rep, err := p.writer.Write(ctx, results, p.cfg.Paths.Report)
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	summary.Report = rep

	p.logger.Info(ctx, "Results saved to %s", rep.Path)

	if p.cfg.Export.Docx {
		if err := report.ExportDocx(results, "Whisper LLM Transcription Results", p.cfg.Export.Path); err != nil {
			p.logger.Warn(ctx, "Docx export failed: %v", err)
		} else {
			p.logger.Info(ctx, "Docx export saved to %s", p.cfg.Export.Path)
		}
	}

	if p.cfg.Summary.Enabled && p.summarizer != nil {
		if err := p.summarizer.Summarize(ctx, results, p.cfg.Summary.Path); err != nil {
			p.logger.Warn(ctx, "Summary failed: %v", err)
		}
	}

	p.logger.Info(ctx, "Batch run %s finished in %s: %d chunks, %d failed, %d recordings skipped",
		summary.RunID, time.Since(startTime).Truncate(time.Millisecond),
		summary.Chunks, summary.Failures, summary.Skipped)

	return summary, nil
}

// discoverRecordings lists eligible FLAC files in the audio folder, in
// directory order. Only top-level files count.
func (p *implPipeline) discoverRecordings() ([]string, error) {
	entries, err := os.ReadDir(p.cfg.Paths.Audio)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrAudioDirMissing, p.cfg.Paths.Audio)
		}
		return nil, fmt.Errorf("read audio folder: %w", err)
	}

	var recordings []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".flac" {
			recordings = append(recordings, e.Name())
		}
	}

	if len(recordings) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoRecordings, p.cfg.Paths.Audio)
	}

	return recordings, nil
}

// transcribeChunks submits every chunk exactly once, strictly in order.
// Transmission failures become error entries; the loop never aborts.
func (p *implPipeline) transcribeChunks(ctx context.Context, chunks []segmenter.Chunk) []report.Result {
	p.logger.Info(ctx, "Starting transcription of %d chunks...", len(chunks))

	results := make([]report.Result, 0, len(chunks))
	for _, c := range chunks {
		name := filepath.Base(c.Path)
		p.logger.Info(ctx, "Processing chunk: %s", name)

		payload, err := p.client.Transcribe(ctx, c.Path)
		if err != nil {
			p.logger.Error(ctx, "Error processing %s: %v", c.Path, err)
			results = append(results, report.Result{ChunkFile: name, Err: err.Error()})
			continue
		}

		p.logger.Info(ctx, "Successfully converted %s to text.", name)
		results = append(results, report.Result{ChunkFile: name, Payload: payload})
	}

	return results
}
