package ml

// Classifier is a generic supervised binary classifier.
type Classifier interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
	PredictProba(X [][]float64) []float64 // returns p(y=1)
}

// Transformer is a preprocessing step: fit on train, transform both splits.
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) [][]float64
	FitTransform(X [][]float64) [][]float64
}
