// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lecture-notes CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lecture-notes/internal/logging"
	"github.com/pdiddy/lecture-notes/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger is configured from --log-level and --log-format at startup.
	logger = zerolog.Nop()

	// loadedSecrets holds API keys read from .secrets/ at startup.
	loadedSecrets secrets.Store
)

var rootCmd = &cobra.Command{
	Use:   "lecture-notes",
	Short: "Expand a directory of lecture PDFs into one Markdown study guide",
	Long: `lecture-notes reads every lec<N>.pdf in the input directory in lecture
order, extracts its text, asks a generative model to expand it into a study
guide with explanations, real-world examples and worked numerical problems,
and writes all lectures into a single Markdown file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(logging.Config{
			Level:  viper.GetString("log_level"),
			Format: viper.GetString("log_format"),
		})
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("path", used).Msg("using config file")
		}

		s, err := secrets.Load(secrets.Dir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./lecture-notes.yaml or ~/.config/lecture-notes/config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	pf.String("input-dir", "", "directory containing lec<N>.pdf files (default \"lectures\")")
	pf.String("output", "", "output Markdown file, overwritten if present (default \"lecture_notes.md\")")
	pf.String("provider", "", "generative service: gemini or anthropic (default \"gemini\")")
	pf.String("model", "", "model identifier (default depends on provider)")
	pf.String("extractor", "", "PDF text extractor: pdf or markitdown (default \"pdf\")")
	pf.String("prompt-file", "", "text/template file replacing the built-in prompt; receives {{.Content}}")
	pf.Int("max-attempts", 0, "generation attempts per lecture (default 5)")
	pf.Duration("initial-delay", 0, "wait after the first failed attempt, doubled each retry (default 5s)")
	pf.Duration("call-timeout", 0, "timeout for a single generation request (default none)")
	pf.Int("min-text-length", 0, "minimum extracted characters to summarize (default 50)")

	for key, flag := range map[string]string{
		"log_level":       "log-level",
		"log_format":      "log-format",
		"input_dir":       "input-dir",
		"output_path":     "output",
		"provider":        "provider",
		"model":           "model",
		"extractor":       "extractor",
		"prompt_file":     "prompt-file",
		"max_attempts":    "max-attempts",
		"initial_delay":   "initial-delay",
		"call_timeout":    "call-timeout",
		"min_text_length": "min-text-length",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
	viper.SetDefault("title", "")
	viper.SetDefault("description", "")
}

func initConfig() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lecture-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lecture-notes"))
		}
	}

	viper.SetEnvPrefix("LECTURE_NOTES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("api_key")

	_ = viper.ReadInConfig()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
