package segmenter

import (
	"context"
	"fmt"
	"time"
)

// Chunk is one fixed-length slice of a source recording, persisted as its
// own FLAC file. Index is 1-based and matches the zero-padded filename.
type Chunk struct {
	Recording string
	Index     int
	Path      string
	Start     time.Duration
	Length    time.Duration
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s chunk %03d [%s +%s]", c.Recording, c.Index, c.Start, c.Length)
}

// Segmenter splits one recording into an ordered sequence of chunk files.
type Segmenter interface {
	// Segment slices the recording at recordingPath into fixed-length
	// chunks under outDir, creating the directory if needed. Chunks are
	// returned in ascending index order.
	Segment(ctx context.Context, recordingPath, outDir string) ([]Chunk, error)
}
