package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/nmvinh214/batchscribe/internal/logger"
)

// New creates a new Watcher over the audio folder. Batches are strictly
// sequential, so at most one run is ever in flight.
func New(audioDir string, handler BatchHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(audioDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		audioDir:  audioDir,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: make(chan struct{}, 1),
	}, nil
}
