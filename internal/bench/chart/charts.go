// Package chart renders the comparison figures as PNG files.
package chart

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/metrics"
)

const (
	NormalizedNodesFile = "graficos_nodos_normalizados.png"
	LatencyPerCharFile  = "graficos_tiempo_por_caracter.png"
	PercentTypedFile    = "graficos_porcentaje_caracteres.png"
	individualPattern   = "graficos_individuales_%s.png"

	wordsLabel = "Número de Palabras"
)

// IndividualFile is the per-dataset figure name.
func IndividualFile(dataset string) string {
	return fmt.Sprintf(individualPattern, dataset)
}

// Renderer writes one or more figures into dir and returns their paths.
type Renderer func(set *metrics.Set, st Style, dir string) ([]string, error)

type NamedRenderer struct {
	Name   string
	Render Renderer
}

// Renderers lists every figure in generation order.
var Renderers = []NamedRenderer{
	{Name: "normalized_nodes", Render: NormalizedNodes},
	{Name: "latency_per_char", Render: LatencyPerChar},
	{Name: "percent_typed", Render: PercentTyped},
	{Name: "individual", Render: Individual},
}

type metricChart struct {
	file   string
	title  string
	panel  string
	xLabel string
	yLabel string
	metric metrics.Metric
	yRange yRange

	// detailLabel is the y label used in per-dataset figures.
	detailLabel string
}

var (
	nodesChart = metricChart{
		file:   NormalizedNodesFile,
		title:  "Eficiencia de Memoria: Nodos Normalizados por Caracteres Ingresados",
		panel:  "Nodos Normalizados por Caracteres",
		xLabel: wordsLabel,
		yLabel: "Nodos / Caracteres",
		metric: metrics.NormalizedNodes,
		yRange: fromZero,

		detailLabel: "Nodos Normalizados por Caracteres",
	}
	latencyChart = metricChart{
		file:   LatencyPerCharFile,
		title:  "Rendimiento: Tiempo de Inserción por Carácter",
		panel:  "Tiempo de Inserción por Carácter",
		xLabel: wordsLabel,
		yLabel: "Tiempo por Carácter (μs)",
		metric: metrics.MicrosPerChar,
		yRange: fromZero,

		detailLabel: "Tiempo de Inserción por Carácter (μs)",
	}
	percentChart = metricChart{
		file:   PercentTypedFile,
		title:  "Eficacia del Autocompletado: Porcentaje de Caracteres Escritos",
		panel:  "Porcentaje de Caracteres Escritos",
		xLabel: "i-ésima Palabra",
		yLabel: "Caracteres Escritos (%)",
		metric: metrics.PercentTyped,
		yRange: percent,

		detailLabel: "Porcentaje de Caracteres Escritos (%)",
	}
)

// detailCharts are the panels of each per-dataset figure, left to right.
var detailCharts = []metricChart{nodesChart, latencyChart, percentChart}

func NormalizedNodes(set *metrics.Set, st Style, dir string) ([]string, error) {
	return st.compareDatasets(set, nodesChart, dir)
}

func LatencyPerChar(set *metrics.Set, st Style, dir string) ([]string, error) {
	return st.compareDatasets(set, latencyChart, dir)
}

func PercentTyped(set *metrics.Set, st Style, dir string) ([]string, error) {
	return st.compareDatasets(set, percentChart, dir)
}

// compareDatasets draws one panel per dataset for a single metric.
// A missing dataset leaves an empty panel.
func (st Style) compareDatasets(set *metrics.Set, mc metricChart, dir string) ([]string, error) {
	plots := make([]*plot.Plot, 0, len(st.Datasets))
	for _, ds := range st.Datasets {
		title := fmt.Sprintf("Dataset: %s\n%s", ds, mc.panel)
		if !set.Has(ds) {
			slog.Warn("Dataset not found, leaving panel empty", "dataset", ds, "chart", mc.file)
			plots = append(plots, emptyPanel(title+"\n(sin datos)"))
			continue
		}

		p, err := st.newPanel(panel{
			Title:  title,
			XLabel: mc.xLabel,
			YLabel: mc.yLabel,
			Metric: mc.metric,
			Range:  mc.yRange,
		}, set.Tables(ds))
		if err != nil {
			return nil, fmt.Errorf("%s panel %s: %w", mc.file, ds, err)
		}
		plots = append(plots, p)
	}

	path := filepath.Join(dir, mc.file)
	if err := st.saveFigure(path, mc.title, plots, st.PanelHeight); err != nil {
		return nil, err
	}
	slog.Info("Chart written", "path", path)
	return []string{path}, nil
}

// Individual writes one figure per dataset with every metric side by side.
// Missing datasets are skipped.
func Individual(set *metrics.Set, st Style, dir string) ([]string, error) {
	var paths []string

	for _, ds := range st.Datasets {
		if !set.Has(ds) {
			slog.Warn("Dataset not found, skipping individual charts", "dataset", ds)
			continue
		}

		plots := make([]*plot.Plot, 0, len(detailCharts))
		for _, mc := range detailCharts {
			p, err := st.newPanel(panel{
				Title:  fmt.Sprintf("%s\n%s", ds, mc.panel),
				XLabel: wordsLabel,
				YLabel: mc.detailLabel,
				Metric: mc.metric,
				Range:  mc.yRange,
			}, set.Tables(ds))
			if err != nil {
				return paths, fmt.Errorf("individual %s %s: %w", ds, mc.metric, err)
			}
			plots = append(plots, p)
		}

		path := filepath.Join(dir, IndividualFile(ds))
		title := fmt.Sprintf("Dataset: %s - Comparación de Métricas", ds)
		if err := st.saveFigure(path, title, plots, st.DetailPanelHeight); err != nil {
			return paths, err
		}
		slog.Info("Chart written", "path", path)
		paths = append(paths, path)
	}

	return paths, nil
}
