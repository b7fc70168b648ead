package maintenance

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nmvinh214/batchscribe/internal/config"
)

// CleanChunks removes the chunks tree and everything under it.
func (m *implMaintenance) CleanChunks(ctx context.Context) error {
	dir := m.cfg.Paths.Chunks
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("%s folder not found", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove chunks folder: %w", err)
	}

	m.logger.Info(ctx, "Deleted %s folder and all chunks.", dir)
	return nil
}

// CleanReport makes the report writable again, then deletes it.
func (m *implMaintenance) CleanReport(ctx context.Context) error {
	path := m.cfg.Paths.Report
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found", path)
	}

	// Clear the read-only flag first or the delete may be refused.
	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("restore write permission: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove report: %w", err)
	}

	m.logger.Info(ctx, "Deleted %s", path)
	return nil
}

// MakeWritable restores write permission on the report file.
func (m *implMaintenance) MakeWritable(ctx context.Context) error {
	path := m.cfg.Paths.Report
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found", path)
	}

	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("restore write permission: %w", err)
	}

	m.logger.Info(ctx, "Made %s writable.", path)
	return nil
}

// ListRecordings returns the eligible FLAC recordings with sizes.
func (m *implMaintenance) ListRecordings(ctx context.Context) ([]RecordingInfo, error) {
	dir := m.cfg.Paths.Audio
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s folder not found", dir)
		}
		return nil, fmt.Errorf("read audio folder: %w", err)
	}

	var infos []RecordingInfo
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != ".flac" {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		infos = append(infos, RecordingInfo{Name: e.Name(), SizeBytes: fi.Size()})
	}

	return infos, nil
}

// ListChunks walks the chunks tree and counts FLAC chunks per recording.
func (m *implMaintenance) ListChunks(ctx context.Context) ([]ChunkGroup, error) {
	dir := m.cfg.Paths.Chunks
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s folder not found", dir)
	}

	counts := map[string]int{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".flac" {
			return nil
		}
		counts[filepath.Base(filepath.Dir(path))]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk chunks folder: %w", err)
	}

	groups := make([]ChunkGroup, 0, len(counts))
	for rec, n := range counts {
		groups = append(groups, ChunkGroup{Recording: rec, Count: n})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Recording < groups[j].Recording })

	return groups, nil
}

// Doctor verifies the batch prerequisites: the ffmpeg binaries, the
// endpoint environment, and the audio folder.
func (m *implMaintenance) Doctor(ctx context.Context) []CheckResult {
	var checks []CheckResult

	for _, bin := range []string{m.cfg.FFmpeg.Binary, m.cfg.FFmpeg.ProbeBinary} {
		if path, err := exec.LookPath(bin); err != nil {
			checks = append(checks, CheckResult{Name: bin, Detail: "not found in PATH"})
		} else {
			checks = append(checks, CheckResult{Name: bin, OK: true, Detail: path})
		}
	}

	for _, env := range []string{config.EnvEndpoint, config.EnvToken} {
		if os.Getenv(env) == "" {
			checks = append(checks, CheckResult{Name: env, Detail: "not set"})
		} else {
			checks = append(checks, CheckResult{Name: env, OK: true, Detail: "set"})
		}
	}

	if fi, err := os.Stat(m.cfg.Paths.Audio); err != nil || !fi.IsDir() {
		checks = append(checks, CheckResult{Name: m.cfg.Paths.Audio, Detail: "folder not found"})
	} else {
		checks = append(checks, CheckResult{Name: m.cfg.Paths.Audio, OK: true, Detail: "folder exists"})
	}

	return checks
}
