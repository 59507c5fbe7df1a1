package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{name: "perfect", yTrue: []float64{0, 1, 1}, yPred: []float64{0, 1, 1}, want: 1},
		{name: "half right", yTrue: []float64{0, 1, 0, 1}, yPred: []float64{0, 0, 1, 1}, want: 0.5},
		{name: "single row hit", yTrue: []float64{1}, yPred: []float64{1}, want: 1},
		{name: "single row miss", yTrue: []float64{1}, yPred: []float64{0}, want: 0},
		{name: "empty", yTrue: nil, yPred: nil, want: 0},
		{name: "length mismatch", yTrue: []float64{1}, yPred: []float64{1, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accuracy(tt.yTrue, tt.yPred))
		})
	}
}

func TestBinaryPredFromProba(t *testing.T) {
	got := BinaryPredFromProba([]float64{0.1, 0.5, 0.49, 0.9}, 0.5)
	assert.Equal(t, []float64{0, 1, 0, 1}, got, "the threshold itself counts as positive")
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := []float64{1, 1, 0, 0, 1}
	yPred := []float64{1, 0, 0, 1, 1}

	prec, rec, f1 := PrecisionRecallF1(yTrue, yPred)
	assert.InDelta(t, 2.0/3.0, prec, 1e-9)
	assert.InDelta(t, 2.0/3.0, rec, 1e-9)
	assert.InDelta(t, 2.0/3.0, f1, 1e-9)
}

func TestPrecisionRecallF1_NoPositives(t *testing.T) {
	prec, rec, f1 := PrecisionRecallF1([]float64{0, 0}, []float64{0, 0})
	assert.Equal(t, 0.0, prec)
	assert.Equal(t, 0.0, rec)
	assert.Equal(t, 0.0, f1)
}
