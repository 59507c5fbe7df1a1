package ml

import "math/rand"

// TrainTestSplit splits X, y into train and test sets by ratio using a
// deterministic permutation derived from seed. nTest = int(n * testRatio),
// so five rows at ratio 0.2 always hold out exactly one row.
func TrainTestSplit(X [][]float64, y []float64, testRatio float64, seed int64) (XTrain, XTest [][]float64, yTrain, yTest []float64) {
	n := len(X)
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)
	for i := 0; i < n; i++ {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			yTest = append(yTest, y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			yTrain = append(yTrain, y[indices[i]])
		}
	}
	return
}
