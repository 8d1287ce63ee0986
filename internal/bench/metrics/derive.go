// Package metrics derives the charted columns from raw result tables.
//
// NormalizedNodes is a simulated placeholder: the benchmark does not export
// node counts, so the column is the estimated character count scaled by a
// random factor in [MinNodeFactor, MaxNodeFactor). It is demonstration data
// and must not be read as a measurement.
package metrics

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/results"
)

const (
	CharsPerWord  = 5
	MinNodeFactor = 1.0
	MaxNodeFactor = 1.3

	microsPerMilli = 1000
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Row is a results.Row plus the derived columns.
type Row struct {
	results.Row
	EstimatedChars  float64
	NormalizedNodes float64
	MicrosPerChar   float64
}

type Table struct {
	Label results.Label
	Rows  []Row
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Last() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// Column returns one derived or raw series, in row order.
func (t *Table) Column(m Metric) []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Value(m)
	}
	return out
}

// Words returns the x axis series.
func (t *Table) Words() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = float64(r.Words)
	}
	return out
}

// Derive computes the derived columns of t. Any row with a non-positive word
// count rejects the whole table, since per-character latency is undefined there.
func Derive(t *results.Table, src Source) (*Table, error) {
	out := &Table{Label: t.Label, Rows: make([]Row, 0, len(t.Rows))}

	for i, r := range t.Rows {
		if r.Words <= 0 {
			return nil, apperr.NewValidationf("row %d: word count must be positive, got %d", i+1, r.Words)
		}
		chars := float64(r.Words * CharsPerWord)
		factor := MinNodeFactor + (MaxNodeFactor-MinNodeFactor)*src.Float64()

		out.Rows = append(out.Rows, Row{
			Row:             r,
			EstimatedChars:  chars,
			NormalizedNodes: chars * factor,
			MicrosPerChar:   r.CumulativeMs / chars * microsPerMilli,
		})
	}

	return out, nil
}

// Set is the derived counterpart of results.Set.
type Set struct {
	tables map[string]map[string]*Table
}

func NewSet() *Set {
	return &Set{tables: make(map[string]map[string]*Table)}
}

func (s *Set) Put(t *Table) {
	variants, ok := s.tables[t.Label.Dataset]
	if !ok {
		variants = make(map[string]*Table)
		s.tables[t.Label.Dataset] = variants
	}
	variants[t.Label.Variant] = t
}

func (s *Set) Has(dataset string) bool {
	return len(s.tables[dataset]) > 0
}

func (s *Set) Empty() bool {
	return len(s.tables) == 0
}

// Tables returns the tables of dataset ordered by variant name.
func (s *Set) Tables(dataset string) []*Table {
	variants := s.tables[dataset]
	out := make([]*Table, 0, len(variants))
	for _, v := range sortedKeys(variants) {
		out = append(out, variants[v])
	}
	return out
}

func (s *Set) Datasets() []string {
	return sortedKeys(s.tables)
}

// DeriveAll derives every table of set. Rejected tables are logged and left out.
func DeriveAll(set *results.Set, src Source) (*Set, []error) {
	out := NewSet()
	var rejected []error

	for _, ds := range set.Datasets() {
		for _, t := range set.Tables(ds) {
			mt, err := Derive(t, src)
			if err != nil {
				err = fmt.Errorf("%s: %w", t.Label, err)
				slog.Error("Skipping table", "dataset", t.Label.Dataset, "variant", t.Label.Variant, "error", err)
				rejected = append(rejected, err)
				continue
			}
			out.Put(mt)
		}
	}

	return out, rejected
}
