// Package config provides Viper-backed configuration loading for the CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Logging holds the logger settings.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the fully resolved CLI configuration.
type Config struct {
	APIKey       string  `mapstructure:"api_key"`
	BaseURL      string  `mapstructure:"base_url"`
	Model        string  `mapstructure:"model"`
	Temperature  float32 `mapstructure:"temperature"`
	SystemPrompt string  `mapstructure:"system_prompt"`
	Logging      Logging `mapstructure:"logging"`
}

// Load reads configuration from an optional config file and the environment.
// Precedence: environment > config file > defaults. The credential is read
// once here and treated as read-only afterwards.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("temperature", 0.0)
	v.SetDefault("system_prompt", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("CHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential and endpoint follow the conventional variable names.
	_ = v.BindEnv("api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("base_url", "OPENAI_BASE_URL")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the startup-fatal requirements.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature %.2f outside [0.0, 1.0]", c.Temperature)
	}
	return nil
}
