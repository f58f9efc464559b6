// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lecture-notes/internal/secrets"
	"github.com/pdiddy/lecture-notes/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves flags, environment, config file and .secrets/ exactly as
run does and prints the result. The API key is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg.Redacted())
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// loadConfig decodes viper settings into a Config with defaults applied and
// the API key resolved.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Defaults()
	cfg.APIKey = resolveAPIKey(cfg.APIKey, cfg.Provider, os.Getenv, loadedSecrets)
	return cfg, nil
}

// providerEnv names the conventional environment variable for each
// provider's key.
var providerEnv = map[types.Provider]string{
	types.ProviderGemini:    "GEMINI_API_KEY",
	types.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// resolveAPIKey picks the first non-empty key from: the explicit value
// (flag, LECTURE_NOTES_API_KEY or config file), the provider's conventional
// environment variable, then .secrets/.
func resolveAPIKey(explicit string, p types.Provider, getenv func(string) string, store secrets.Store) string {
	if explicit != "" {
		return explicit
	}
	if name, ok := providerEnv[p]; ok {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return store.APIKey(p)
}
