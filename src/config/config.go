// Package config loads runtime configuration for the researcher CLI and the
// engine constructors, from the environment and an optional YAML file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything needed to build an engine. Credentials for the
// LLM providers themselves (OPENAI_API_KEY and friends) stay in the
// environment and are read by the provider constructors.
type Config struct {
	// Engine selects "embedded" or "remote".
	Engine string `mapstructure:"engine"`

	// Provider and Model configure the embedded engine's LLM.
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`

	// Retriever selects the web search backend for the embedded engine.
	Retriever       string `mapstructure:"retriever"`
	RetrieverAPIKey string `mapstructure:"retriever_api_key"`
	MaxResults      int    `mapstructure:"max_results"`

	// DocPath is the local document directory for local-source research.
	DocPath string `mapstructure:"doc_path"`

	// Remote engine settings.
	RemoteURL    string `mapstructure:"remote_url"`
	RemoteAPIKey string `mapstructure:"remote_api_key"`
}

// Load reads configuration with GPTR_-prefixed environment variables taking
// precedence over the optional config file. The conventional unprefixed
// variables (DOC_PATH, TAVILY_API_KEY) are honored as fallbacks.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("engine", "embedded")
	v.SetDefault("provider", "openai")
	v.SetDefault("model", "gpt-4o")
	v.SetDefault("retriever", "tavily")
	v.SetDefault("max_results", 8)

	v.SetEnvPrefix("GPTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults must be bound explicitly for Unmarshal to see
	// them. doc_path and retriever_api_key also honor the conventional
	// unprefixed names used by the wider research tooling.
	_ = v.BindEnv("doc_path", "GPTR_DOC_PATH", "DOC_PATH")
	_ = v.BindEnv("retriever_api_key", "GPTR_RETRIEVER_API_KEY", "TAVILY_API_KEY")
	_ = v.BindEnv("remote_url")
	_ = v.BindEnv("remote_api_key")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Engine {
	case "embedded", "remote":
	default:
		return fmt.Errorf("unknown engine %q (want embedded or remote)", c.Engine)
	}
	if c.Engine == "remote" && strings.TrimSpace(c.RemoteURL) == "" {
		return fmt.Errorf("remote engine requires remote_url (GPTR_REMOTE_URL)")
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	return nil
}
