// Package main provides the internship recommender CLI: offline scoring,
// model training and the HTTP server.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/config"
	"github.com/jonathan/internship-recommender/internal/logger"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "recommender",
		Short: "AI-based internship recommendation service",
		Long:  "Recommender ranks internship and career opportunities against a learner profile, using a trained text classifier, a rule-based scorer, or both.",
	}
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is recommender.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	mustBindPFlag("debug", "debug")
	mustBindPFlag("json", "json")

	config.SetDefaults(viper.GetViper())
}

func mustBindPFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("recommender")
		viper.SetConfigType("yaml")
	}

	// The config file is optional; a missing default file is not an error,
	// an explicitly named one is.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}
	}
}

// buildLogger constructs the zap logger from the persistent flags.
func buildLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

// loadConfig reads the merged runtime configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}
