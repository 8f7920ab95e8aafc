// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dbpedia-info CLI. It runs the
// Wikipedia reference detector over editor submissions, keeps the resulting
// hints in a registry, and displays info cards backed by DBpedia lookups.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/dbpedia-info/internal/lookup"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and synced on exit.
var logger = zap.NewNop()

// rootCmd is the base command for the dbpedia-info CLI.
var rootCmd = &cobra.Command{
	Use:   "dbpedia-info",
	Short: "Hint Wikipedia references in annotated text with DBpedia info cards",
	Long: `dbpedia-info scans RDFa-annotated text blocks for references to English
Wikipedia articles and turns each one into an info card. A card shows the
short description and thumbnail DBpedia holds for the referenced subject.

Submissions are YAML or JSON files of annotated blocks. Hints produced from
them are kept in a SQLite registry so later commands can list and show them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		config := zap.NewProductionConfig()
		if debug {
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
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dbpedia-info.yaml or ~/.config/dbpedia-info/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("registry", "", "hints registry database (default: dbpedia-info.db)")
	_ = viper.BindPFlag("registry.path", rootCmd.PersistentFlags().Lookup("registry"))

	viper.SetDefault("detect.trim_whitespace_in_span", true)
	viper.SetDefault("detect.required_predicates", []string{})
	viper.SetDefault("detect.underscores_as_spaces", false)
	viper.SetDefault("lookup.endpoint", lookup.DefaultEndpoint)
	viper.SetDefault("lookup.timeout", "10s")
	viper.SetDefault("lookup.user_agent", "dbpedia-info/"+version)
	viper.SetDefault("lookup.requests_per_second", 0)
	viper.SetDefault("lookup.burst", 1)
	viper.SetDefault("registry.path", "dbpedia-info.db")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dbpedia-info")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dbpedia-info"))
		}
	}

	viper.SetEnvPrefix("DBPEDIA_INFO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the component configuration from viper.
func loadConfig() types.Config {
	var cfg types.Config
	cfg.Detect = types.DetectConfig{
		TrimWhitespaceInSpan: viper.GetBool("detect.trim_whitespace_in_span"),
		RequiredPredicates:   viper.GetStringSlice("detect.required_predicates"),
		UnderscoresAsSpaces:  viper.GetBool("detect.underscores_as_spaces"),
	}
	cfg.Lookup = types.LookupConfig{
		Endpoint:          viper.GetString("lookup.endpoint"),
		RequestsPerSecond: viper.GetFloat64("lookup.requests_per_second"),
		Burst:             viper.GetInt("lookup.burst"),
	}
	cfg.Lookup.Timeout = viper.GetDuration("lookup.timeout")
	cfg.Lookup.UserAgent = viper.GetString("lookup.user_agent")
	cfg.Registry = types.RegistryConfig{Path: viper.GetString("registry.path")}
	return cfg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
