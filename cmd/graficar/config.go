package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/chart"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/pipeline"
	"github.com/DjordjeVuckovic/autocomplete-bench/pkg/config/env"
)

type cliConfig struct {
	InputDir    string
	OutputDir   string
	Seed        uint64
	StylePath   string
	JSONPath    string
	DPI         int
	Parallelism int
	Verbose     bool
}

// parseFlags reads flags on top of environment defaults, so every flag is optional.
func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("graficar", flag.ContinueOnError)
	fs.StringVar(&cfg.InputDir, "input", env.String("RESULTS_DIR", pipeline.DefaultInputDir), "Directory holding results_<dataset>_<variant>.csv files")
	fs.StringVar(&cfg.OutputDir, "output", env.String("OUTPUT_DIR", pipeline.DefaultOutputDir), "Directory for the generated PNG charts")
	fs.Uint64Var(&cfg.Seed, "seed", env.Uint64("RESULTS_SEED", 0), "Seed for the simulated node factor (0 picks one from the clock)")
	fs.StringVar(&cfg.StylePath, "style", "", "Optional chart style YAML")
	fs.StringVar(&cfg.JSONPath, "json", "", "Optional path for a JSON copy of the summary")
	fs.IntVar(&cfg.DPI, "dpi", 0, "Override the style DPI")
	fs.IntVar(&cfg.Parallelism, "parallel", pipeline.DefaultParallelism, "Charts rendered concurrently")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if cfg.DPI < 0 {
		return cliConfig{}, fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
	}
	return cfg, nil
}

func (c cliConfig) pipelineConfig() (pipeline.Config, error) {
	pc := pipeline.DefaultConfig()
	pc.InputDir = c.InputDir
	pc.OutputDir = c.OutputDir
	pc.JSONPath = c.JSONPath
	pc.Parallelism = c.Parallelism

	pc.Seed = c.Seed
	if pc.Seed == 0 {
		pc.Seed = uint64(time.Now().UnixNano())
	}

	if c.StylePath != "" {
		st, err := chart.LoadStyle(c.StylePath)
		if err != nil {
			return pipeline.Config{}, err
		}
		pc.Style = st
	}
	if c.DPI > 0 {
		pc.Style.DPI = c.DPI
	}
	return pc, nil
}

// loadEnv is best effort: flags work without a .env file.
func loadEnv() {
	_ = env.LoadDotEnv(os.Getenv("ENV"), "cmd/graficar/.env")
}
