// Package main provides the entry point for the career pivot batch tools.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-pivots/internal/config"
	"github.com/jonathan/career-pivots/internal/logging"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the state resolved from them
// before a subcommand runs.
type rootOptions struct {
	configPath string
	logLevel   string
	verbose    bool

	cfg    config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "career_pivots",
		Short: "Career timeline pivot tools",
		Long: "Analyzes, regenerates and restores the pivot opportunities of a career timeline JSON document. " +
			"Each command reads the document, transforms it in memory and writes it back once.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newEnhanceCmd(opts))
	rootCmd.AddCommand(newRestoreCmd(opts))

	return rootCmd
}

// resolve layers defaults, the config file, the environment and flags, in
// that order, and builds the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Defaults()
	if o.configPath != "" {
		fileCfg, err := config.LoadConfig(o.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg.ApplyEnv(os.LookupEnv)

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
