package cli

import (
	"github.com/spf13/cobra"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/config"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/dataset"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/log"
)

var (
	synthRows int
	synthOut  string
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Write a synthetic applicant CSV for the review to load",
	Example: `  # Fifty applicants into ./applicants.csv
  fairaudit synth

  # A bigger batch somewhere specific
  fairaudit synth --rows 500 --out /tmp/applicants.csv

  # Review the synthesized records
  FAIRAUDIT_DATASET_PATH=applicants.csv fairaudit review`,
	Args: cobra.NoArgs,
	RunE: runSynth,
}

func init() {
	synthCmd.Flags().IntVar(&synthRows, "rows", 50, "number of applicant records")
	synthCmd.Flags().StringVar(&synthOut, "out", "applicants.csv", "output CSV path")
}

func runSynth(cmd *cobra.Command, args []string) error {
	bootLogger := log.NewLogger("INFO", false)
	defer bootLogger.Sync()

	cfg := config.GetConfigs(bootLogger, cfgFile)

	logger := log.NewLogger(cfg.LoggerConfig.Level, cfg.LoggerConfig.DisableTimestamp)
	defer logger.Sync()

	frame, err := dataset.Synthesize(synthRows, cfg.Split.Seed)
	if err != nil {
		logger.Errorf("Failed to synthesize applicant records ❌ %v", err)
		return err
	}
	if err := dataset.WriteCSV(frame, synthOut); err != nil {
		logger.Errorf("Failed to write applicant records ❌ %v", err)
		return err
	}
	logger.Infof("Synthesized applicant records ✅ [%d rows into %s]", frame.NumRows(), synthOut)
	return nil
}
