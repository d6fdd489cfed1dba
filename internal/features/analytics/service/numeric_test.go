package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPercentile verifies linear interpolation between closest ranks.
func TestPercentile(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	assert.Equal(t, 0.0, percentile(nil, 95))
	assert.Equal(t, 2.5, percentile(values, 50))
	assert.Equal(t, 1.0, percentile(values, 0))
	assert.Equal(t, 4.0, percentile(values, 100))
	assert.InDelta(t, 3.85, percentile(values, 95), 1e-9)
	assert.Equal(t, 7.0, percentile([]float64{7}, 95))
	// Input order is untouched.
	assert.Equal(t, []float64{4, 1, 3, 2}, values)
}

// TestMean verifies the empty case.
func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.0, mean([]float64{1, 2, 3}))
}
