package results

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/reader"
)

const (
	ColumnWords        = "palabras"
	ColumnCumulativeMs = "tiempo_acumulado_ms"
	ColumnPercentTyped = "porcentaje_caracteres"
)

var requiredColumns = []string{ColumnWords, ColumnCumulativeMs, ColumnPercentTyped}

// Row is one measurement taken after Words words were inserted.
type Row struct {
	Words        int64
	CumulativeMs float64
	PercentTyped float64
}

// Table holds the rows of one result file in file order.
type Table struct {
	Label Label
	Path  string
	Rows  []Row
}

func (t *Table) Len() int { return len(t.Rows) }

// Last returns the final row; ok is false for an empty table.
func (t *Table) Last() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// ParseTable reads a result CSV. Columns other than the three consumed ones are ignored.
func ParseTable(r io.Reader) (*Table, error) {
	cr := reader.NewCSVReader(r)
	records, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	present := make(map[string]bool, len(cr.Headers()))
	for _, h := range cr.Headers() {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, apperr.NewValidationf("missing column %q", col)
		}
	}

	t := &Table{Rows: make([]Row, 0, len(records))}
	for i, rec := range records {
		row, err := parseRow(rec)
		if err != nil {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseRow(rec map[string]string) (Row, error) {
	words, err := parseWords(rec[ColumnWords])
	if err != nil {
		return Row{}, apperr.NewValidationWrap("column "+ColumnWords, err)
	}
	ms, err := strconv.ParseFloat(rec[ColumnCumulativeMs], 64)
	if err != nil {
		return Row{}, apperr.NewValidationWrap("column "+ColumnCumulativeMs, err)
	}
	pct, err := strconv.ParseFloat(rec[ColumnPercentTyped], 64)
	if err != nil {
		return Row{}, apperr.NewValidationWrap("column "+ColumnPercentTyped, err)
	}
	if !finite(ms) || !finite(pct) {
		return Row{}, apperr.NewValidation("NaN or Inf measurement")
	}
	return Row{Words: words, CumulativeMs: ms, PercentTyped: pct}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// parseWords accepts integers and integral floats ("1000.0"), as written by some exporters.
func parseWords(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("word count %q is not an integer", s)
	}
	return int64(f), nil
}
