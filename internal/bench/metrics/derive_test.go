package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/results"
)

// fixedSource returns the same draw every time.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func table(label results.Label, rows ...results.Row) *results.Table {
	return &results.Table{Label: label, Rows: rows}
}

var reciente = results.Label{Dataset: results.DatasetWikipedia, Variant: "reciente"}

func TestDerive_SingleRow(t *testing.T) {
	in := table(reciente, results.Row{Words: 10, CumulativeMs: 200, PercentTyped: 50})

	out, err := Derive(in, fixedSource(0))
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	row := out.Rows[0]
	assert.Equal(t, 50.0, row.EstimatedChars)
	assert.Equal(t, 4000.0, row.MicrosPerChar)
	assert.Equal(t, 50.0, row.PercentTyped)
	assert.Equal(t, 50.0, row.NormalizedNodes)
	assert.Equal(t, reciente, out.Label)
}

func TestDerive_Columns(t *testing.T) {
	in := table(reciente,
		results.Row{Words: 1, CumulativeMs: 0.5, PercentTyped: 100},
		results.Row{Words: 100, CumulativeMs: 37.5, PercentTyped: 61.2},
		results.Row{Words: 25000, CumulativeMs: 9100, PercentTyped: 33.3},
	)

	out, err := Derive(in, NewSource(1))
	require.NoError(t, err)
	require.Equal(t, in.Len(), out.Len())

	for i, row := range out.Rows {
		raw := in.Rows[i]
		chars := float64(raw.Words * CharsPerWord)

		assert.Equal(t, chars, row.EstimatedChars, "row %d", i)
		assert.InDelta(t, raw.CumulativeMs/chars*1000, row.MicrosPerChar, 1e-9, "row %d", i)
		assert.Equal(t, raw.PercentTyped, row.PercentTyped, "row %d", i)
		assert.GreaterOrEqual(t, row.NormalizedNodes, chars*MinNodeFactor, "row %d", i)
		assert.Less(t, row.NormalizedNodes, chars*MaxNodeFactor, "row %d", i)
	}
}

func TestDerive_NodeFactorBounds(t *testing.T) {
	in := table(reciente, results.Row{Words: 2, CumulativeMs: 1, PercentTyped: 1})

	low, err := Derive(in, fixedSource(0))
	require.NoError(t, err)
	assert.Equal(t, 10.0, low.Rows[0].NormalizedNodes)

	high, err := Derive(in, fixedSource(0.999999))
	require.NoError(t, err)
	assert.Less(t, high.Rows[0].NormalizedNodes, 13.0)
	assert.Greater(t, high.Rows[0].NormalizedNodes, 12.99)
}

func TestDerive_SeededSourceIsDeterministic(t *testing.T) {
	in := table(reciente,
		results.Row{Words: 10, CumulativeMs: 1},
		results.Row{Words: 20, CumulativeMs: 2},
	)

	a, err := Derive(in, NewSource(42))
	require.NoError(t, err)
	b, err := Derive(in, NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, a.Column(NormalizedNodes), b.Column(NormalizedNodes))
}

func TestDerive_RejectsNonPositiveWords(t *testing.T) {
	for _, words := range []int64{0, -3} {
		in := table(reciente,
			results.Row{Words: 10, CumulativeMs: 1},
			results.Row{Words: words, CumulativeMs: 2},
		)

		_, err := Derive(in, fixedSource(0))
		require.Error(t, err)

		var ve *apperr.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Contains(t, err.Error(), "row 2")
	}
}

func TestDeriveAll(t *testing.T) {
	set := results.NewSet()
	set.Put(table(reciente, results.Row{Words: 10, CumulativeMs: 200, PercentTyped: 50}))
	set.Put(table(results.Label{Dataset: results.DatasetWikipedia, Variant: "frecuente"},
		results.Row{Words: 10, CumulativeMs: 100, PercentTyped: 40}))
	set.Put(table(results.Label{Dataset: results.DatasetRandom, Variant: "reciente"},
		results.Row{Words: 0, CumulativeMs: 1, PercentTyped: 1}))

	out, rejected := DeriveAll(set, fixedSource(0.5))

	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0].Error(), "random/reciente")
	assert.Equal(t, []string{results.DatasetWikipedia}, out.Datasets())
	assert.False(t, out.Has(results.DatasetRandom))

	tables := out.Tables(results.DatasetWikipedia)
	require.Len(t, tables, 2)
	assert.Equal(t, "frecuente", tables[0].Label.Variant)
	assert.Equal(t, "reciente", tables[1].Label.Variant)
	assert.Equal(t, []float64{2000}, tables[0].Column(MicrosPerChar))
	assert.Equal(t, []float64{10}, tables[0].Words())
}

func TestRow_Value(t *testing.T) {
	row := Row{
		Row:             results.Row{Words: 1, PercentTyped: 12.5},
		NormalizedNodes: 6,
		MicrosPerChar:   7,
	}

	assert.Equal(t, 6.0, row.Value(NormalizedNodes))
	assert.Equal(t, 7.0, row.Value(MicrosPerChar))
	assert.Equal(t, 12.5, row.Value(PercentTyped))
	assert.Zero(t, row.Value(Metric("unknown")))
}
