package maintenance

import "context"

// RecordingInfo describes one eligible recording in the audio folder.
type RecordingInfo struct {
	Name      string
	SizeBytes int64
}

// ChunkGroup counts the generated chunks for one recording.
type ChunkGroup struct {
	Recording string
	Count     int
}

// CheckResult is one line of doctor output.
type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

// Maintenance exposes the housekeeping operations around the generated
// artifacts: chunks, the report, and its write permission.
type Maintenance interface {
	// CleanChunks removes the whole chunks tree.
	CleanChunks(ctx context.Context) error
	// CleanReport restores write permission on the report, then deletes it.
	CleanReport(ctx context.Context) error
	// MakeWritable restores write permission on the report.
	MakeWritable(ctx context.Context) error
	// ListRecordings returns the eligible recordings with their sizes.
	ListRecordings(ctx context.Context) ([]RecordingInfo, error)
	// ListChunks returns per-recording chunk counts.
	ListChunks(ctx context.Context) ([]ChunkGroup, error)
	// Doctor checks the external prerequisites of a batch run.
	Doctor(ctx context.Context) []CheckResult
}
