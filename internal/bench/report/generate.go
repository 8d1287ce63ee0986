package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/metrics"
)

type Options struct {
	Seed     uint64
	InputDir string
	Now      func() time.Time
}

// Generate summarizes set for each of datasets, in order.
func Generate(set *metrics.Set, datasets []string, opts Options) *Report {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	r := &Report{
		Meta: Meta{
			RunID:       uuid.New(),
			Timestamp:   now().UTC(),
			Seed:        opts.Seed,
			InputDir:    opts.InputDir,
			Environment: NewEnvironmentInfo(),
		},
		Datasets: make([]DatasetReport, 0, len(datasets)),
	}

	for _, ds := range datasets {
		dr := DatasetReport{Name: ds, Found: set.Has(ds)}
		for _, t := range set.Tables(ds) {
			dr.Variants = append(dr.Variants, summarize(t))
		}
		r.Datasets = append(r.Datasets, dr)
	}

	return r
}

func summarize(t *metrics.Table) VariantReport {
	vr := VariantReport{
		Variant:       t.Label.Variant,
		Rows:          t.Len(),
		MicrosPerChar: metrics.ComputeStats(t.Column(metrics.MicrosPerChar)),
		PercentTyped:  metrics.ComputeStats(t.Column(metrics.PercentTyped)),
	}
	if last, ok := t.Last(); ok {
		vr.Final = &Snapshot{
			Words:           last.Words,
			PercentTyped:    last.PercentTyped,
			NormalizedNodes: last.NormalizedNodes,
			MicrosPerChar:   last.MicrosPerChar,
			TotalSeconds:    last.CumulativeMs / 1000,
		}
	}
	return vr
}
