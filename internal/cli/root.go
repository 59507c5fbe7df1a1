package cli

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fairaudit",
	Short: "Fairness review walkthrough for a credit-approval model",
	Long: `fairaudit walks a small credit-applicant dataset through the steps of a
model fairness review: it removes prohibited attributes, inspects the
correlations of the surviving variables, documents why each variable is
used, fits an approval model, and measures group fairness metrics on the
attributes that were removed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.json)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(versionCmd)
}
