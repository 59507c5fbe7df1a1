package component

// Split holds the train/test partitioning parameters.
type Split struct {
	TestRatio float64 `mapstructure:"test_ratio"`
	Seed      int64   `mapstructure:"seed"`
}
