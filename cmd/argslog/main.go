package main

import (
	"os"

	"github.com/akim-muto/shutdown-task/internal/cli"
	"github.com/akim-muto/shutdown-task/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "argslog [args...]",
	Short: "Append a timestamped record of the given arguments to a log file",
}

func main() {
	cli.SetupCLI(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		log.GetLogger().Errorf("Failed to record arguments: %v", err)
		os.Exit(1)
	}
}
