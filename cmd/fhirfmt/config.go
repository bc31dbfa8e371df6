package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultIndent = "  "

type Config struct {
	Indent           string `mapstructure:"indent"`
	Format           string `mapstructure:"format"`
	LogLevel         string `mapstructure:"log-level"`
	CheckChoiceTypes bool   `mapstructure:"check-choice-types"`
}

// loadConfig merges flags with FHIRFMT_ environment variables, flags set on the command line
// take precedence.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FHIRFMT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("indent", defaultIndent)
	v.SetDefault("format", "json")
	v.SetDefault("log-level", "info")
	v.SetDefault("check-choice-types", false)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
