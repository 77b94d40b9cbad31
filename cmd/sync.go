package cmd

import (
	"fmt"

	"chain-sync/core/config"
	"chain-sync/core/logger"
	"chain-sync/core/merge"
	syncer "chain-sync/core/sync"
	"chain-sync/feature/chains"
	"chain-sync/feature/icons"
	"chain-sync/feature/staking"
	"chain-sync/feature/xcm"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	versionFlag         string
	allVersionsFlag     bool
	updateUpstreamFlag  bool
	includeExcludedFlag bool
)

// syncCmd is the parent command for all sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Merge the upstream dataset with the overlay",
	Long: `Merge every resource family (chains, xcm, icons, staking) of the
upstream dataset with the local overlay and write the consolidated tree.

A resource whose base file is missing is skipped; a malformed or
unwritable resource is reported as failed. Neither stops the run. Only a
completely missing upstream root aborts.

Examples:
  # Merge the default version
  chain-sync sync

  # Merge one version only
  chain-sync sync --version v21

  # Merge every known version, refreshing the upstream submodule first
  chain-sync sync --all --update

  # Keep entries the exclusion filter would drop
  chain-sync sync --include-excluded`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, chains.New(), xcm.New(), icons.New(), staking.New())
	},
}

var syncChainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Merge chain list files only",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, chains.New())
	},
}

var syncXCMCmd = &cobra.Command{
	Use:   "xcm",
	Short: "Merge cross-chain message documents only",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, xcm.New())
	},
}

var syncIconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Overlay icon trees only",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, icons.New())
	},
}

var syncStakingCmd = &cobra.Command{
	Use:   "staking",
	Short: "Merge the global staking config only",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, staking.New())
	},
}

func init() {
	syncCmd.AddCommand(syncChainsCmd, syncXCMCmd, syncIconsCmd, syncStakingCmd)

	syncCmd.PersistentFlags().StringVarP(&versionFlag, "version", "v", "", "Version selector (default from config)")
	syncCmd.PersistentFlags().BoolVarP(&allVersionsFlag, "all", "a", false, "Merge every discovered version")
	syncCmd.PersistentFlags().BoolVarP(&updateUpstreamFlag, "update", "u", false, "Update the upstream submodule first")
	syncCmd.PersistentFlags().BoolVar(&includeExcludedFlag, "include-excluded", false, "Keep entries the exclusion filter would drop")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, resources ...syncer.Resource) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.MergeOverrides(buildOverrides()); err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	if updateUpstreamFlag {
		syncer.Refresh(ctx, l, ".", cfg.Sync.Submodule)
	}

	version := versionFlag
	if version == "" {
		version = cfg.Sync.Version
	}

	rt := &syncer.Runtime{
		Base:    cfg.Sync.BaseRoot,
		Overlay: cfg.Sync.OverlayRoot,
		Output:  cfg.Sync.OutputRoot,
		Log:     l,
		Opts: syncer.Options{
			Version:         version,
			All:             allVersionsFlag,
			IncludeExcluded: includeExcludedFlag,
		},
		Rules: merge.DefaultRules(),
	}

	summary, err := syncer.NewRunner(rt, resources...).Run(ctx)
	if err != nil {
		return err
	}

	printSummary(l, summary)
	return nil
}

// buildOverrides translates global flags into a sparse config override.
func buildOverrides() *config.Config {
	override := &config.Config{}
	override.Sync.BaseRoot = baseRootFlag
	override.Sync.OverlayRoot = overlayRootFlag
	override.Sync.OutputRoot = outputRootFlag
	override.Log.Level = logLevelFlag
	override.Log.Format = logFormatFlag
	return override
}

// printSummary reports the final merged/skipped/failed breakdown.
func printSummary(l *zap.Logger, summary *syncer.Summary) {
	l.Info("run summary",
		zap.String("run_id", summary.RunID),
		zap.Int("merged", summary.Merged()),
		zap.Int("skipped", summary.Skipped()),
		zap.Int("failed", summary.Failed()),
	)

	for _, o := range summary.ByStatus(syncer.StatusSkipped) {
		l.Warn("skipped", zap.String("resource", o.Resource), zap.String("reason", o.Reason))
	}
	for _, o := range summary.ByStatus(syncer.StatusFailed) {
		l.Error("failed", zap.String("resource", o.Resource), zap.String("reason", o.Reason))
	}
}
