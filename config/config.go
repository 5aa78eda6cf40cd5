// Package config loads and validates configuration for applications
// embedding the Leitner scheduler. Values come from an optional YAML file
// and from environment variables, with environment variables taking
// precedence.
package config

import (
	"github.com/phrazzld/leitner"
)

// Config holds all configuration for a host application.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	Logging   LoggingConfig   `mapstructure:"logging"   validate:"required"`
}

// SchedulerConfig contains the tunable scheduling parameters.
type SchedulerConfig struct {
	// MaxBucket caps how far an Easy review can promote a card.
	// 0 disables the cap.
	MaxBucket int `mapstructure:"max_bucket" validate:"gte=0"`

	// HardestCardLimit caps the hardest-cards list in progress reports.
	HardestCardLimit int `mapstructure:"hardest_card_limit" validate:"gt=0"`

	// HintMask is the single character substituted for hidden characters
	// in hints.
	HintMask string `mapstructure:"hint_mask" validate:"required,len=1"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Params converts the scheduler settings into a leitner.Params instance.
func (c SchedulerConfig) Params() *leitner.Params {
	cfg := leitner.ParamsConfig{
		MaxBucket:        c.MaxBucket,
		HardestCardLimit: c.HardestCardLimit,
	}
	if runes := []rune(c.HintMask); len(runes) > 0 {
		cfg.HintMask = runes[0]
	}

	return leitner.NewParams(cfg)
}
