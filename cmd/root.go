package cmd

import (
	"fmt"
	"os"

	"chain-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags translated into config overrides; see buildOverrides.
	baseRootFlag    string
	overlayRootFlag string
	outputRootFlag  string
	logLevelFlag    string
	logFormatFlag   string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "chain-sync",
	Short: "Chain Config Sync",
	Long: `chain-sync merges the upstream chain configuration dataset with the
locally curated overlay into the consolidated tree the wallet consumes.
Overlay entries always take priority; known-bad upstream entries are
filtered out before the merge.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with debug level gives ISO8601 timestamps,
		// matching what a CLI user expects.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&baseRootFlag, "base", "", "Upstream dataset root (overrides SYNC_BASE_ROOT)")
	RootCmd.PersistentFlags().StringVar(&overlayRootFlag, "overlay", "", "Overlay dataset root (overrides SYNC_OVERLAY_ROOT)")
	RootCmd.PersistentFlags().StringVar(&outputRootFlag, "output", "", "Output tree root (overrides SYNC_OUTPUT_ROOT)")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (overrides LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: console or json (overrides LOG_FORMAT)")
}
