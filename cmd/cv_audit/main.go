// Package main provides the cv_audit CLI for auditing structured CV profiles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-auditor/internal/config"
)

var (
	configPath string
	verbose    bool

	// settings holds defaults resolved from the config file, the environment
	// and built-in values. Command flags take precedence over it.
	settings = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "cv_audit",
	Short: "Audit CV profiles against country hiring conventions",
	Long: "cv_audit scores a structured CV profile for typography, content, contact, ATS, " +
		"industry and regional compliance issues, and renders a coaching report.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print boxed summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves settings as environment over config file over defaults.
func loadSettings(_ *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	env := config.LoadFromEnv()
	merged := env.MergeWithDefaults(fileCfg)
	merged = merged.MergeWithDefaults(config.Defaults())
	merged.Verbose = verbose || fileCfg.Verbose

	if err := merged.Validate(); err != nil {
		return err
	}
	settings = merged
	return nil
}
