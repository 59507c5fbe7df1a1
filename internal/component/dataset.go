package component

// DataSet selects where the applicant records come from. When Path is empty
// the built-in five-applicant demo set is used.
type DataSet struct {
	Path       string   `mapstructure:"path"`
	Target     string   `mapstructure:"target"`
	Prohibited []string `mapstructure:"prohibited"`
}
