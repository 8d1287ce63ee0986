package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/pipeline"
)

func main() {
	loadEnv()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	pc, err := cfg.pipelineConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("Loading and processing results", "input", pc.InputDir, "output", pc.OutputDir, "seed", pc.Seed)

	out, err := pipeline.Run(ctx, pc, os.Stdout)
	if err != nil {
		slog.Error("Report generation failed", "error", err)
		stop()
		os.Exit(1)
	}
	if len(out.Charts) > 0 {
		slog.Info("Charts generated", "count", len(out.Charts))
	}
}
