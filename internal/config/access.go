package config

import "errors"

type AccessConfig struct {
	// Admins may sweep excess custody balance.
	Admins []string `mapstructure:"admins"`
	// Managers may tune ledger parameters.
	Managers []string `mapstructure:"managers"`
}

func (cfg *AccessConfig) Validate() error {
	if len(cfg.Admins) == 0 {
		return errors.New("at least one admin address is required")
	}
	if len(cfg.Managers) == 0 {
		return errors.New("at least one manager address is required")
	}
	return nil
}
