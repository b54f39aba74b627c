package config

import (
	"errors"
	"fmt"
	"time"
)

type APIConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle-timeout"`
}

func (cfg *APIConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("api host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("api port %d is out of range", cfg.Port)
	}
	if cfg.ReadTimeout <= 0 {
		return errors.New("api read-timeout must be positive")
	}
	if cfg.WriteTimeout <= 0 {
		return errors.New("api write-timeout must be positive")
	}
	if cfg.IdleTimeout <= 0 {
		return errors.New("api idle-timeout must be positive")
	}
	return nil
}

func (cfg *APIConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
