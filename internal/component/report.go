package component

// Report selects how the review report is rendered.
type Report struct {
	// Format is one of "human", "json" or "yaml".
	Format string `mapstructure:"format"`
}
