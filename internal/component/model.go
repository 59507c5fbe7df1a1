package component

// Model holds the logistic-regression hyperparameters.
type Model struct {
	LearningRate float64 `mapstructure:"learning_rate"`
	Epochs       int     `mapstructure:"epochs"`
}
