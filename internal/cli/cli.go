package cli

import (
	"code.cloudfoundry.org/clock"
	"github.com/akim-muto/shutdown-task/internal/config"
	"github.com/akim-muto/shutdown-task/internal/log"
	internal_storage "github.com/akim-muto/shutdown-task/internal/storage"
	"github.com/akim-muto/shutdown-task/pkg/service"
	"github.com/spf13/cobra"
)

// SetupCLI turns rootCmd into the argument logger. Every argument is taken verbatim,
// including ones that look like flags, so the command has no flags or subcommands.
func SetupCLI(rootCmd *cobra.Command) {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.DisableFlagParsing = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log.GetLogger().Debugf("Recording arguments to %s", cfg.OutputFile)
		return recordArgs(cfg, args)
	}
}

func recordArgs(cfg config.Config, args []string) error {
	store, err := internal_storage.InitStore(cfg.OutputFile)
	if err != nil {
		return err
	}
	rec := service.NewRecorder(store, clock.NewClock(), log.GetLogger(), cfg.Header)
	_, err = rec.Record(args)
	return err
}
