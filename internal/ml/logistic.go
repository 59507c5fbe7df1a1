package ml

import (
	"math"

	"github.com/pkg/errors"
)

// LogisticRegression is a binary classifier with sigmoid activation trained
// by full-batch gradient descent on binary cross-entropy. Weights start at
// zero so a fit is fully deterministic.
type LogisticRegression struct {
	W            []float64
	B            float64
	LearningRate float64
	Epochs       int
}

// NewLogisticRegression initializes a model for nFeatures inputs.
func NewLogisticRegression(nFeatures int, learningRate float64, epochs int) *LogisticRegression {
	return &LogisticRegression{
		W:            make([]float64, nFeatures),
		LearningRate: learningRate,
		Epochs:       epochs,
	}
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// Fit trains the model on X against the binary labels y.
func (m *LogisticRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("ml: empty training set")
	}
	if len(X) != len(y) {
		return errors.New("ml: feature and label counts differ")
	}
	if len(X[0]) != len(m.W) {
		return errors.New("ml: feature count mismatch between model and data")
	}

	n := float64(len(X))
	for ep := 0; ep < m.Epochs; ep++ {
		p := m.PredictProba(X)

		// Gradient of mean binary cross-entropy: (p - y) folded back
		// through the inputs.
		gW := make([]float64, len(m.W))
		gB := 0.0
		for i, row := range X {
			d := (p[i] - y[i]) / n
			for j, xij := range row {
				gW[j] += d * xij
			}
			gB += d
		}

		for j := range m.W {
			m.W[j] -= m.LearningRate * gW[j]
		}
		m.B -= m.LearningRate * gB
	}
	return nil
}

// PredictProba returns p(y=1) for each input row.
func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		sum := m.B
		for j, v := range row {
			sum += m.W[j] * v
		}
		out[i] = sigmoid(sum)
	}
	return out
}

// Predict returns class labels based on a 0.5 probability threshold.
func (m *LogisticRegression) Predict(X [][]float64) []float64 {
	return BinaryPredFromProba(m.PredictProba(X), 0.5)
}
