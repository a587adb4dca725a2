// Package config provides the pricer configuration.
//
// Configuration is read from an optional YAML file laid over the built-in
// defaults, then environment variables override individual values:
//
//	PRICER_MODE        output.mode
//	PRICER_ROUNDING    pricing.rounding
//	PRICER_LOG_LEVEL   logging.level
//	PRICER_LOG_FORMAT  logging.format
//
// Example file:
//
//	pricing:
//	  rounding: half_even
//	  tiers:
//	    - { threshold: 10, rate: 0.5 }
//	    - { threshold: 4, rate: 0.7 }
//	    - { threshold: 1, rate: 0.9 }
//	output:
//	  mode: modifications
//	  indent: "  "
//	logging:
//	  level: ${LOG_LEVEL}
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rental-ledger/internal/domain"
	"rental-ledger/internal/pricing"
)

// Config represents the entire application configuration
type Config struct {
	Pricing PricingConfig `yaml:"pricing"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TierConfig is one degressive price tier
type TierConfig struct {
	Threshold int     `yaml:"threshold"`
	Rate      float64 `yaml:"rate"`
}

// PricingConfig holds the rules engine settings
type PricingConfig struct {
	Tiers              []TierConfig `yaml:"tiers"`
	CommissionRate     float64      `yaml:"commission_rate"`
	AssistanceDailyFee int          `yaml:"assistance_daily_fee"`
	DeductibleDailyFee int          `yaml:"deductible_daily_fee"`
	Rounding           string       `yaml:"rounding"` // "half_even" or "half_up"
}

// OutputConfig holds report settings
type OutputConfig struct {
	Mode   string `yaml:"mode"`   // price, commission, options, actions, modifications
	Indent string `yaml:"indent"` // empty writes compact JSON
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	rules := pricing.DefaultRules()
	tiers := make([]TierConfig, 0, len(rules.Tiers))
	for _, t := range rules.Tiers {
		tiers = append(tiers, TierConfig{Threshold: t.Threshold, Rate: t.Rate})
	}
	return &Config{
		Pricing: PricingConfig{
			Tiers:              tiers,
			CommissionRate:     rules.CommissionRate,
			AssistanceDailyFee: rules.AssistanceDailyFee,
			DeductibleDailyFee: rules.DeductibleDailyFee,
			Rounding:           string(rules.Rounding),
		},
		Output: OutputConfig{
			Mode:   string(domain.ModeModifications),
			Indent: "  ",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables (e.g., ${PRICER_INDENT})
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set, or the defaults otherwise.
// Environment overrides apply in both cases.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg := Default()
	cfg.overrideWithEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("PRICER_MODE"); val != "" {
		c.Output.Mode = val
	}
	if val := os.Getenv("PRICER_ROUNDING"); val != "" {
		c.Pricing.Rounding = val
	}
	if val := os.Getenv("PRICER_LOG_LEVEL"); val != "" {
		c.Logging.Level = val
	}
	if val := os.Getenv("PRICER_LOG_FORMAT"); val != "" {
		c.Logging.Format = val
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := c.Pricing.Rules(); err != nil {
		return err
	}
	if _, err := c.Output.ReportMode(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// Rules converts the pricing section into validated engine rules.
func (p PricingConfig) Rules() (pricing.Rules, error) {
	rounding, err := pricing.ParseRoundingMode(p.Rounding)
	if err != nil {
		return pricing.Rules{}, fmt.Errorf("pricing.rounding: %w", err)
	}
	rules := pricing.Rules{
		Tiers:              make([]pricing.Tier, 0, len(p.Tiers)),
		CommissionRate:     p.CommissionRate,
		AssistanceDailyFee: p.AssistanceDailyFee,
		DeductibleDailyFee: p.DeductibleDailyFee,
		Rounding:           rounding,
	}
	for _, t := range p.Tiers {
		rules.Tiers = append(rules.Tiers, pricing.Tier{Threshold: t.Threshold, Rate: t.Rate})
	}
	if err := rules.Validate(); err != nil {
		return pricing.Rules{}, fmt.Errorf("pricing: %w", err)
	}
	return rules, nil
}

// ReportMode parses output.mode.
func (o OutputConfig) ReportMode() (domain.ReportMode, error) {
	return domain.ParseReportMode(o.Mode)
}
