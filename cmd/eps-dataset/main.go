// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the eps-dataset CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/eps-dataset/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd extracts the dataset when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "eps-dataset [docx...]",
	Short: "Build the exercise dataset from session documents",
	Long: `eps-dataset reads exercise session documents (.docx), extracts every
session, exercise and illustration, fills the fields the documents leave
empty, and writes the dataset JSON consumed by the application.

Documents default to the "docs" configuration key. When none of them exist,
a demonstration dataset is written instead.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(extractConfig(), args, cmd.OutOrStdout(), logger)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./eps-dataset.yaml or ~/.config/eps-dataset/eps-dataset.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser decisions at debug level")

	rootCmd.Flags().String("root", "", "project directory outputs are written under")
	rootCmd.Flags().String("overrides", "", "YAML file of editorial overrides keyed by exercise code")
	_ = viper.BindPFlag("root", rootCmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("overrides", rootCmd.Flags().Lookup("overrides"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("root", ".")
	viper.SetDefault("docs", []string{
		filepath.Join("..", "..", "source_docs", "EPS-1.docx"),
		filepath.Join("..", "..", "source_docs", "EPS-2.docx"),
	})
	viper.SetDefault("output.src", filepath.Join("src", "data", "exercises.json"))
	viper.SetDefault("output.public", filepath.Join("public", "data", "exercises.json"))
	viper.SetDefault("output.images", filepath.Join("public", "images"))
	viper.SetDefault("overrides", "")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("eps-dataset")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "eps-dataset"))
		}
	}

	viper.SetEnvPrefix("EPS_DATASET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// extractConfig reads the extraction settings from viper.
func extractConfig() types.ExtractConfig {
	return types.ExtractConfig{
		Root: viper.GetString("root"),
		Docs: viper.GetStringSlice("docs"),
		Output: types.OutputConfig{
			Src:    viper.GetString("output.src"),
			Public: viper.GetString("output.public"),
			Images: viper.GetString("output.images"),
		},
		Overrides: viper.GetString("overrides"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
