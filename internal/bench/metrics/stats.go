package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one column across the rows of a table.
type Stats struct {
	Min         float64         `json:"min"`
	Max         float64         `json:"max"`
	Mean        float64         `json:"mean"`
	Median      float64         `json:"median"`
	Stddev      float64         `json:"stddev"`
	Percentiles map[int]float64 `json:"percentiles"`
	SampleCount int             `json:"sample_count"`
}

var defaultPercentiles = []int{50, 90, 95, 99}

func ComputeStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{Percentiles: make(map[int]float64)}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Stats{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Median:      percentile(sorted, 50),
		Percentiles: make(map[int]float64, len(defaultPercentiles)),
		SampleCount: len(sorted),
	}

	if len(sorted) > 1 {
		s.Mean, s.Stddev = stat.MeanStdDev(sorted, nil)
	} else {
		s.Mean = sorted[0]
	}

	for _, p := range defaultPercentiles {
		s.Percentiles[p] = percentile(sorted, p)
	}

	return s
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s Stats) P50() float64 { return s.Percentiles[50] }
func (s Stats) P90() float64 { return s.Percentiles[90] }
func (s Stats) P95() float64 { return s.Percentiles[95] }
func (s Stats) P99() float64 { return s.Percentiles[99] }

func (s Stats) IsZero() bool {
	return s.SampleCount == 0
}
