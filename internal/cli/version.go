package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// These will be set by build scripts.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show fairaudit version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fairaudit v%s\n", version)
		fmt.Printf("Git Commit: %s\n", gitCommit)
		fmt.Printf("Build Date: %s\n", buildDate)
	},
}
