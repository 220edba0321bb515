// Package cli implements the knowbot command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"knowbot/internal/model"
)

var (
	cfgFile string
	kbPath  string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "knowbot",
	Short: "Knowbot - A teachable knowledge-base assistant with a safety gate",
	Long: `Knowbot answers free-text questions from a flat collection of taught
facts. Each fact holds one answer and an expandable set of question
phrasings; utterances resolve through exact matching first, then a single
approximate scorer with a fixed threshold.

A keyword safety gate screens proposed actions against a simple non-harm
policy before they execute. The gate is deliberately conservative and
explainable: it flags any action that combines harm vocabulary with a
human referent, and allows everything it does not recognize.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("knowbot v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.knowbot/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&kbPath, "kb", "", "knowledge file (default: knowledge.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("kb.path", rootCmd.PersistentFlags().Lookup("kb"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.knowbot")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match KNOWBOT_*
	viper.SetEnvPrefix("KNOWBOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, config file and flags into one Config
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("kb.path"); v != "" {
		cfg.KB.Path = v
	}
	if v := viper.GetInt("match.threshold"); v > 0 {
		cfg.Match.Threshold = v
	}
	if v := viper.GetString("match.scorer"); v != "" {
		cfg.Match.Scorer = v
	}
	if viper.IsSet("match.cache_ttl") {
		cfg.Match.CacheTTL = viper.GetDuration("match.cache_ttl")
	}
	if v := viper.GetStringSlice("safety.harm_words"); len(v) > 0 {
		cfg.Safety.HarmWords = v
	}
	if v := viper.GetStringSlice("safety.human_words"); len(v) > 0 {
		cfg.Safety.HumanWords = v
	}
	if v := viper.GetInt("concurrency.enrich_workers"); v > 0 {
		cfg.Concurrency.EnrichWorkers = v
	}
	cfg.Output.Verbose = viper.GetBool("verbose")
	cfg.Output.JSON = viper.GetBool("output.json")

	return cfg
}
