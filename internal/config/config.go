package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig holds the fallback values the interactive session
// uses when a new-account prompt is left blank.
type DefaultsConfig struct {
	Checking CheckingDefaults `yaml:"checking"`
	Savings  SavingsDefaults  `yaml:"savings"`
}

// CheckingDefaults are the default checking-account limits.
type CheckingDefaults struct {
	WithdrawalLimit float64 `yaml:"withdrawal_limit"`
	OverdraftLimit  float64 `yaml:"overdraft_limit"`
}

// SavingsDefaults are the default savings-account parameters.
type SavingsDefaults struct {
	PeriodsPerYear  int     `yaml:"periods_per_year"`
	AnnualRate      float64 `yaml:"annual_rate"`
	WithdrawalLimit float64 `yaml:"withdrawal_limit"`
}

// Load reads a teller.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible session defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Checking: CheckingDefaults{
				WithdrawalLimit: 1000,
				OverdraftLimit:  -200,
			},
			Savings: SavingsDefaults{
				PeriodsPerYear:  12,
				AnnualRate:      5,
				WithdrawalLimit: 500,
			},
		},
	}
}
