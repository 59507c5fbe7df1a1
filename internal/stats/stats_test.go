package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "simple", x: []float64{1, 2, 3, 4}, want: 2.5},
		{name: "single value", x: []float64{7}, want: 7},
		{name: "empty", x: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.x), tol)
		})
	}
}

func TestVarianceAndStd(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		wantVar float64
	}{
		{name: "population variance", x: []float64{2, 4, 4, 4, 5, 5, 7, 9}, wantVar: 4},
		{name: "constant column", x: []float64{3, 3, 3}, wantVar: 0},
		{name: "empty", x: nil, wantVar: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantVar, Variance(tt.x), tol)
			if tt.wantVar == 4 {
				assert.InDelta(t, 2, Std(tt.x), tol)
			}
		})
	}
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	assert.InDelta(t, 2.5, Covariance(x, y), tol)
	assert.InDelta(t, Covariance(x, y), Covariance(y, x), tol)
	assert.Equal(t, 0.0, Covariance(x, []float64{1, 2}))
	assert.Equal(t, 0.0, Covariance(nil, nil))
}

func TestCorrelation(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{name: "perfect positive", x: []float64{1, 2, 3, 4}, y: []float64{10, 20, 30, 40}, want: 1},
		{name: "perfect negative", x: []float64{1, 2, 3, 4}, y: []float64{8, 6, 4, 2}, want: -1},
		{name: "zero variance side", x: []float64{1, 2, 3}, y: []float64{5, 5, 5}, want: 0},
		{name: "length mismatch", x: []float64{1, 2, 3}, y: []float64{1, 2}, want: 0},
		{name: "empty", x: nil, y: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Correlation(tt.x, tt.y), tol)
		})
	}
}
