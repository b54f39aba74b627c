package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Db      DbConfig      `mapstructure:"db"`
	Queue   QueueConfig   `mapstructure:"queue"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	API     APIConfig     `mapstructure:"api"`
	Access  AccessConfig  `mapstructure:"access"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Ledger.Validate(); err != nil {
		return err
	}
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}
	if err := cfg.API.Validate(); err != nil {
		return err
	}
	return cfg.Access.Validate()
}

// New returns a fully parsed and validated Config from the given file.
// Environment variables override file values, e.g. LEDGER_ANNUAL_RATE_BPS.
func New(cfgFile string) (*Config, error) {
	viper.SetConfigFile(cfgFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
