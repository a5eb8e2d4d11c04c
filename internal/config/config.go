// Package config loads and saves loanemi's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/theirongolddev/loanemi/internal/loan"
)

// Config holds all loanemi configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DefaultsConfig holds the inputs a session starts from.
type DefaultsConfig struct {
	HomeValue         float64 `toml:"home_value"`
	DownPayment       float64 `toml:"down_payment"`
	AnnualRatePercent float64 `toml:"annual_rate_percent"`
	TenureMonths      int     `toml:"tenure_months"`
}

// DisplayConfig holds output formatting preferences.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			HomeValue:         loan.DefaultHomeValue,
			DownPayment:       loan.DefaultDownPayment,
			AnnualRatePercent: loan.DefaultAnnualRatePercent,
			TenureMonths:      loan.DefaultTenureMonths,
		},
		Display: DisplayConfig{
			CurrencySymbol: "₹",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// pathOverride is set by --config.
var pathOverride string

// SetPath overrides the config file location. An empty path restores the default.
func SetPath(path string) {
	pathOverride = path
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "loanemi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "loanemi")
}

// Path returns the full path to the config file.
func Path() string {
	if pathOverride != "" {
		return pathOverride
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LoadOrDefault loads config, returning defaults on error so a UI can always start.
func LoadOrDefault() (Config, error) {
	cfg, err := Load()
	if err != nil {
		cfg = DefaultConfig()
		applyEnv(&cfg)
	}
	return cfg, err
}

func applyEnv(cfg *Config) {
	if sym := os.Getenv("LOANEMI_CURRENCY"); sym != "" {
		cfg.Display.CurrencySymbol = sym
	}
	if th := os.Getenv("LOANEMI_THEME"); th != "" {
		cfg.Appearance.Theme = th
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Inputs returns the committed session-start inputs described by the defaults section.
func (c Config) Inputs() (loan.Inputs, error) {
	in := loan.Inputs{
		HomeValue:         c.Defaults.HomeValue,
		DownPayment:       c.Defaults.DownPayment,
		AnnualRatePercent: c.Defaults.AnnualRatePercent,
		TenureMonths:      c.Defaults.TenureMonths,
	}
	in, err := in.Commit()
	if err != nil {
		return loan.DefaultInputs(), fmt.Errorf("config defaults: %w", err)
	}
	if err := in.Validate(); err != nil {
		return loan.DefaultInputs(), fmt.Errorf("config defaults: %w", err)
	}
	return in, nil
}

// SetDefaults stores in as the session-start inputs.
func (c *Config) SetDefaults(in loan.Inputs) {
	c.Defaults = DefaultsConfig{
		HomeValue:         in.HomeValue,
		DownPayment:       in.DownPayment,
		AnnualRatePercent: in.AnnualRatePercent,
		TenureMonths:      in.TenureMonths,
	}
}
