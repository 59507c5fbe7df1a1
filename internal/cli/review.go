package cli

import (
	"github.com/spf13/cobra"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/config"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/log"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/services"
)

var outputFormat string

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run the fairness review and print the report",
	Example: `  # Review the built-in five-applicant dataset
  fairaudit review

  # Machine-readable report
  fairaudit review --output json

  # Review applicant records loaded from a CSV file
  FAIRAUDIT_DATASET_PATH=applicants.csv fairaudit review`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "report format: human, json, yaml (default from config)")
}

func runReview(cmd *cobra.Command, args []string) error {
	// The configuration decides the log level, so a default logger
	// carries the config loading itself.
	bootLogger := log.NewLogger("INFO", false)
	defer bootLogger.Sync()

	cfg := config.GetConfigs(bootLogger, cfgFile)

	logger := log.NewLogger(cfg.LoggerConfig.Level, cfg.LoggerConfig.DisableTimestamp)
	defer logger.Sync()

	report, err := services.NewReviewSvc().Run(logger, cfg)
	if err != nil {
		return err
	}

	format := cfg.Report.Format
	if outputFormat != "" {
		format = outputFormat
	}
	return services.NewReportSvc().Render(logger, report, format)
}
