package main

import (
	"context"
	"fmt"
	"os"

	"math-helper/internal/app"
	"math-helper/internal/config"
	"math-helper/internal/logger"

	"github.com/spf13/cobra"
)

var (
	assetRoot string
	logLevel  string
)

// rootCmd opens the Grade 1-2 "Watch a Tutorial" screen.
var rootCmd = &cobra.Command{
	Use:           "math-helper",
	Short:         "Math Helper tutorial launcher",
	Version:       app.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel, cfg.Debug))

		application, err := app.NewApplication(cfg, log)
		if err != nil {
			return err
		}
		return application.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&assetRoot, "assets", "", "image asset root (overrides MATH_HELPER_ASSET_ROOT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
}

// loadConfig reads the environment and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("assets") {
		cfg.AssetRoot = assetRoot
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
