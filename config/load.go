package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// LEITNER_SCHEDULER_MAX_BUCKET or LEITNER_LOGGING_LEVEL.
const envPrefix = "LEITNER"

// Load reads configuration from the given YAML file (skipped when path is
// empty) and from environment variables, which take precedence over file
// values. Missing settings fall back to defaults. Returns a populated
// Config or an error if reading, parsing, or validation fails.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("scheduler.max_bucket", 0)
	v.SetDefault("scheduler.hardest_card_limit", 3)
	v.SetDefault("scheduler.hint_mask", "_")
	v.SetDefault("logging.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
