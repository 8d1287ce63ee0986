package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Zero(t, s.Min)
	assert.Zero(t, s.Max)
	assert.Zero(t, s.Mean)
	assert.True(t, s.IsZero())
}

func TestComputeStats_SingleValue(t *testing.T) {
	s := ComputeStats([]float64{4000})

	assert.Equal(t, 4000.0, s.Min)
	assert.Equal(t, 4000.0, s.Max)
	assert.Equal(t, 4000.0, s.Mean)
	assert.Equal(t, 4000.0, s.Median)
	assert.Zero(t, s.Stddev)
	assert.Equal(t, 1, s.SampleCount)
	assert.False(t, s.IsZero())
}

func TestComputeStats_Unsorted(t *testing.T) {
	s := ComputeStats([]float64{50, 10, 30, 20, 40})

	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 50.0, s.Max)
	assert.Equal(t, 30.0, s.Mean)
	assert.Equal(t, 30.0, s.Median)
	assert.InDelta(t, 15.811, s.Stddev, 1e-3)
	assert.Equal(t, 5, s.SampleCount)
}

func TestComputeStats_Percentiles(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	s := ComputeStats(values)

	assert.InDelta(t, 50.5, s.P50(), 1e-9)
	assert.InDelta(t, 90.1, s.P90(), 1e-9)
	assert.InDelta(t, 95.05, s.P95(), 1e-9)
	assert.InDelta(t, 99.01, s.P99(), 1e-9)
}

func TestComputeStats_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeStats(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}
