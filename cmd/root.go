package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/catsale/internal/config"
	"github.com/Mohsinsiddi/catsale/internal/logger"
	"github.com/Mohsinsiddi/catsale/internal/metrics"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/catsale/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir      string
	cfg         *config.Config
	verbose     bool
	fromFlag    string
	showMetrics bool

	log       = zap.NewNop()
	registry  *prometheus.Registry
	collector *metrics.Collector
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "catsale",
	Short: "Run an NFT collection sale from the terminal",
	Long: `catsale manages a capped NFT collection sale: a whitelisted presale,
a public mint, owner mints, a one-way metadata reveal and withdrawals.

State lives in the config directory and every mutating command is
all-or-nothing: a rejected call leaves the stored sale untouched.

The caller of each command is --from (an address or an account alias),
falling back to the configured default account.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "checksum" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log, err = logger.New(logger.Config{Debug: verbose || cfg.Debug})
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		registry = prometheus.NewRegistry()
		collector, err = metrics.New(registry)
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync() //nolint:errcheck
		if registry == nil || !(showMetrics || cfg.Metrics) {
			return nil
		}
		return printMetrics(cmd.OutOrStdout(), registry)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func init() {
	// CATSALE_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("CATSALE_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.catsale)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&fromFlag, "from", "", "caller address or account alias (default: configured default account)")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print sale metrics collected by this command")

	// Register all sub-commands.
	rootCmd.AddCommand(
		initCmd,
		accountCmd,
		configCmd,
		deployCmd,
		statusCmd,
		pauseCmd,
		unpauseCmd,
		presaleCmd,
		revealCmd,
		uriCmd,
		whitelistCmd,
		mintCmd,
		ownerOfCmd,
		totalSupplyCmd,
		balanceOfCmd,
		transferCmd,
		transferOwnershipCmd,
		withdrawCmd,
		eventsCmd,
		snapshotCmd,
		convertCmd,
		checksumCmd,
	)
}
