package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
	"github.com/nmvinh214/batchscribe/internal/pipeline"
	"github.com/nmvinh214/batchscribe/internal/report"
	"github.com/nmvinh214/batchscribe/internal/segmenter"
	"github.com/nmvinh214/batchscribe/internal/summarizer"
	"github.com/nmvinh214/batchscribe/internal/transcriber"
	"github.com/nmvinh214/batchscribe/internal/watcher"
	"github.com/nmvinh214/batchscribe/pkg/executor"
)

func main() {
	var (
		configPath string
		watchMode  bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.BoolVar(&watchMode, "watch", false, "Keep running and re-batch when new recordings appear")
	flag.Parse()

	ctx := context.Background()

	// Credentials come from the environment; a .env file is honored.
	config.LoadEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	endpoint, err := config.NewEndpoint()
	if err != nil {
		log.Error(ctx, "Endpoint configuration: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	seg := segmenter.New(cfg, exec, log)
	client := transcriber.New(endpoint, log)
	writer := report.NewWriter(log)

	var summ summarizer.Summarizer
	if cfg.Summary.Enabled {
		keys := config.GeminiKeys()
		if len(keys) == 0 {
			log.Warn(ctx, "Summary enabled but %s is not set; skipping summaries", config.EnvGeminiKeys)
		} else {
			summ = summarizer.New(keys, cfg.Summary.Model, log)
		}
	}

	pipe := pipeline.New(cfg, seg, client, writer, summ, log)

	if !watchMode {
		if err := runOnce(ctx, pipe, log); err != nil {
			os.Exit(1)
		}
		return
	}

	runWatch(ctx, cfg, pipe, log)
}

// runOnce executes a single batch over whatever is in the audio folder.
func runOnce(ctx context.Context, pipe pipeline.Pipeline, log logger.Logger) error {
	sum, err := pipe.Run(ctx)
	if err != nil {
		log.Error(ctx, "%v", err)
		return err
	}

	if sum.Report == nil {
		return nil
	}

	log.Info(ctx, "All processing complete!")
	return nil
}

// runWatch keeps the process alive and re-runs the batch whenever a new
// recording lands in the audio folder.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Audio, 0755); err != nil {
		log.Error(ctx, "Failed to create audio folder: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, triggeredBy string) error {
		log.Info(ctx, "Re-running batch (triggered by %s)", triggeredBy)
		_, err := pipe.Run(ctx)
		return err
	}

	w, err := watcher.New(cfg.Paths.Audio, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new recordings. Press Ctrl+C to stop", cfg.Paths.Audio)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Stopped")
}
