package component

// Review holds the decision thresholds of the fairness review.
type Review struct {
	// AccuracyThreshold triggers the mitigation finding when the held-out
	// accuracy falls below it.
	AccuracyThreshold float64 `mapstructure:"accuracy_threshold"`
	// AIRThreshold flags a group when its adverse impact ratio falls below
	// it (four-fifths rule).
	AIRThreshold float64 `mapstructure:"air_threshold"`
}
