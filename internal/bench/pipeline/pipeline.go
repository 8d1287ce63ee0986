// Package pipeline runs one reporting pass: load result files, derive
// metrics, render charts, print the summary.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/chart"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/results"
)

const (
	DefaultInputDir    = "resultados"
	DefaultOutputDir   = "."
	DefaultParallelism = 4
)

type Config struct {
	InputDir  string
	OutputDir string
	Seed      uint64
	Style     chart.Style
	// JSONPath, when set, receives the report as JSON.
	JSONPath    string
	Parallelism int
}

func DefaultConfig() Config {
	return Config{
		InputDir:    DefaultInputDir,
		OutputDir:   DefaultOutputDir,
		Style:       chart.DefaultStyle(),
		Parallelism: DefaultParallelism,
	}
}

// Outcome describes what a run produced. Charts is empty when the run
// stopped early for lack of input.
type Outcome struct {
	Files    []string
	Skipped  []error
	Rejected []error
	Charts   []string
	Report   *report.Report
}

// Run executes the pipeline, writing human-readable progress to w.
// Missing input is not an error: Run prints guidance and returns.
func Run(ctx context.Context, cfg Config, w io.Writer) (*Outcome, error) {
	out := &Outcome{}

	fmt.Fprintln(w, "Verificando archivos CSV existentes:")
	files, err := results.Discover(cfg.InputDir)
	if errors.Is(err, results.ErrNoResultFiles) {
		slog.Warn("No result files", "dir", cfg.InputDir, "error", err)
		fmt.Fprintf(w, "   No se encontraron archivos CSV en la carpeta '%s/'\n", cfg.InputDir)
		fmt.Fprintln(w, "   Ejecuta primero: make run-compare")
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		fmt.Fprintf(w, "   %s\n", filepath.Base(f))
	}
	out.Files = files

	loaded, skipped := results.Load(files)
	out.Skipped = skipped
	if loaded.Empty() {
		fmt.Fprintln(w, "No se pudieron cargar datos de los archivos CSV")
		return out, nil
	}
	slog.Info("Datasets loaded", "datasets", loaded.Datasets())
	for _, ds := range loaded.Missing(cfg.Style.Datasets) {
		slog.Warn("Dataset missing", "dataset", ds)
	}

	set, rejected := metrics.DeriveAll(loaded, metrics.NewSource(cfg.Seed))
	out.Rejected = rejected
	if set.Empty() {
		fmt.Fprintln(w, "No se pudieron cargar datos de los archivos CSV")
		return out, nil
	}

	charts, err := render(ctx, set, cfg)
	if err != nil {
		return out, err
	}
	out.Charts = charts

	rpt := report.Generate(set, cfg.Style.Datasets, report.Options{Seed: cfg.Seed, InputDir: cfg.InputDir})
	out.Report = rpt
	fmt.Fprintln(w)
	report.WriteSummary(rpt, w)
	report.WriteStatsTable(rpt, w)

	if cfg.JSONPath != "" {
		if err := report.WriteJSON(rpt, cfg.JSONPath); err != nil {
			return out, err
		}
		slog.Info("Report written", "path", cfg.JSONPath)
	}

	fmt.Fprintln(w, "\nArchivos creados:")
	for _, c := range charts {
		fmt.Fprintf(w, "   - %s\n", c)
	}

	return out, nil
}

// render runs every chart renderer concurrently. Paths come back in renderer order.
func render(ctx context.Context, set *metrics.Set, cfg Config) ([]string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([][]string, len(chart.Renderers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallelism, 1))

	for i, r := range chart.Renderers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := r.Render(set, cfg.Style, cfg.OutputDir)
			if err != nil {
				return fmt.Errorf("render %s: %w", r.Name, err)
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, p := range paths {
		all = append(all, p...)
	}
	return all, nil
}
