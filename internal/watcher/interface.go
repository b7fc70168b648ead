package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// BatchHandler runs one batch over the audio folder. It is invoked when
// a new recording lands; triggeredBy names the file that woke us up.
type BatchHandler func(ctx context.Context, triggeredBy string) error
