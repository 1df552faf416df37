// englishcoach serves and drives AI-generated English practice exercises.
package main

import (
	"fmt"
	"os"

	"englishcoach/config"
	"englishcoach/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

// newCompleter is replaced in tests.
var newCompleter = services.NewCompleter

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "englishcoach",
		Short: "AI-generated English practice: paragraphs, tenses, reading and writing",
		Long: `englishcoach generates English practice material with a remote language model
and checks the learner's answers.

Run the HTTP API for the browser app:

  englishcoach serve --config config/config.yml

Or practice in the terminal:

  englishcoach practice tense --tenses "Past Simple,Present Perfect" --count 5
  englishcoach practice reading --level beginner --topic "Health and Wellness"`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (overrides config)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newModelsCmd())
	rootCmd.AddCommand(newPracticeCmd())
	return rootCmd
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// loadPractice reads configuration and wires the practice service.
func loadPractice() (*config.Config, *services.Practice, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	setupLogging(cfg.Log.Level)

	completer, err := newCompleter(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create completer: %w", err)
	}
	registry := services.NewRegistry(cfg.Models)
	return cfg, services.NewPractice(completer, registry, cfg.Practice.TranslationLanguage), nil
}
