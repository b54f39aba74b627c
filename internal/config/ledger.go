package config

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

const maxAnnualRateBps = 10_000

type LedgerConfig struct {
	// AnnualRateBps is the initial annual reward rate in basis points
	// (0-10000 inclusive).
	AnnualRateBps uint32 `mapstructure:"annual-rate-bps"`
	// MinStake is the minimum principal accepted per stake call, in base
	// units. Decimal string so amounts are not capped at int64.
	MinStake string `mapstructure:"min-stake"`
	// CoolingPeriod is the delay between requesting and finalizing a
	// withdrawal.
	CoolingPeriod time.Duration `mapstructure:"cooling-period"`
	// SettleInterval drives the background rate settle poller.
	SettleInterval time.Duration `mapstructure:"settle-interval"`
	// SnapshotInterval drives periodic state snapshots to the database.
	SnapshotInterval time.Duration `mapstructure:"snapshot-interval"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.AnnualRateBps > maxAnnualRateBps {
		return fmt.Errorf("annual-rate-bps %d exceeds the maximum of %d", cfg.AnnualRateBps, maxAnnualRateBps)
	}
	minStake, ok := sdkmath.NewIntFromString(cfg.MinStake)
	if !ok {
		return fmt.Errorf("min-stake %q is not a valid integer", cfg.MinStake)
	}
	if minStake.IsNegative() {
		return fmt.Errorf("min-stake %s must not be negative", minStake)
	}
	if cfg.CoolingPeriod <= 0 {
		return errors.New("cooling-period must be positive")
	}
	if cfg.SettleInterval <= 0 {
		return errors.New("settle-interval must be positive")
	}
	if cfg.SnapshotInterval <= 0 {
		return errors.New("snapshot-interval must be positive")
	}
	return nil
}

// MinStakeAmount returns the parsed minimum stake. Call Validate first.
func (cfg *LedgerConfig) MinStakeAmount() sdkmath.Int {
	minStake, ok := sdkmath.NewIntFromString(cfg.MinStake)
	if !ok {
		return sdkmath.ZeroInt()
	}
	return minStake
}
