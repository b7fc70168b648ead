package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nmvinh214/batchscribe/internal/config"
	"github.com/nmvinh214/batchscribe/internal/logger"
	"github.com/nmvinh214/batchscribe/internal/maintenance"
)

func main() {
	var (
		configPath   string
		cleanChunks  bool
		cleanReport  bool
		makeWritable bool
		listAudio    bool
		listChunks   bool
		doctor       bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.BoolVar(&cleanChunks, "clean-chunks", false, "Delete all generated chunks")
	flag.BoolVar(&cleanReport, "clean-report", false, "Delete the results file")
	flag.BoolVar(&makeWritable, "make-writable", false, "Make the results file writable")
	flag.BoolVar(&listAudio, "list-audio", false, "List FLAC files in the audio folder")
	flag.BoolVar(&listChunks, "list-chunks", false, "List generated chunks")
	flag.BoolVar(&doctor, "doctor", false, "Check ffmpeg, credentials and folders")
	flag.Parse()

	ctx := context.Background()

	config.LoadEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	m := maintenance.New(cfg, logger.New(cfg.Logging.Level))

	switch {
	case cleanChunks:
		exitOnError(m.CleanChunks(ctx))
	case cleanReport:
		exitOnError(m.CleanReport(ctx))
	case makeWritable:
		exitOnError(m.MakeWritable(ctx))
	case listAudio:
		printRecordings(ctx, m)
	case listChunks:
		printChunks(ctx, m)
	case doctor:
		printChecks(ctx, m)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printRecordings(ctx context.Context, m maintenance.Maintenance) {
	infos, err := m.ListRecordings(ctx)
	exitOnError(err)

	if len(infos) == 0 {
		fmt.Println("No FLAC files found.")
		return
	}

	fmt.Printf("Found %d FLAC file(s):\n", len(infos))
	for _, info := range infos {
		fmt.Printf("  - %s (%.2f MB)\n", info.Name, float64(info.SizeBytes)/(1024*1024))
	}
}

func printChunks(ctx context.Context, m maintenance.Maintenance) {
	groups, err := m.ListChunks(ctx)
	exitOnError(err)

	if len(groups) == 0 {
		fmt.Println("No chunks found.")
		return
	}

	total := 0
	for _, g := range groups {
		fmt.Printf("%s: %d chunks\n", g.Recording, g.Count)
		total += g.Count
	}
	fmt.Printf("\nTotal: %d chunks\n", total)
}

func printChecks(ctx context.Context, m maintenance.Maintenance) {
	failed := false
	for _, c := range m.Doctor(ctx) {
		status := "OK"
		if !c.OK {
			status = "FAIL"
			failed = true
		}
		fmt.Printf("[%s] %s: %s\n", status, c.Name, c.Detail)
	}
	if failed {
		os.Exit(1)
	}
}
