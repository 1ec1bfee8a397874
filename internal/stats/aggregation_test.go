package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, -1.5, Mean([]float64{-1, -2}))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 0.0, Max(nil))
	assert.Equal(t, 9.0, Max([]float64{3, 9, 1}))
	assert.Equal(t, -1.0, Max([]float64{-4, -1, -7}))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.23, RoundTo(1.2345, 2))
	assert.Equal(t, 1.24, RoundTo(1.235, 2))
	assert.Equal(t, 100.0, RoundTo(99.96, 1)) // carries over
	assert.InDelta(t, -73.538701, RoundTo(-73.5387006, 6), 1e-9)
}
