package ledger

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// rateAt computes the multiplier as of now without mutating state. The
// second return reports whether the rate actually advanced.
//
// Accrual is simple interest proportional to elapsed seconds:
//
//	newRate = rate + rate * elapsed * annualRateBps / (secondsPerYear * 10000)
//
// The multiply happens before the divide so floor rounding is exact. The
// rate is frozen while no stake exists; only lastUpdateTime moves.
func (l *Ledger) rateAt(now int64) (sdkmath.Int, bool) {
	if l.state.TotalStaked.IsZero() || now <= l.state.LastUpdateTime {
		return l.state.RatePerStake, false
	}

	elapsed := sdkmath.NewInt(now - l.state.LastUpdateTime)
	numerator := l.state.RatePerStake.
		Mul(elapsed).
		Mul(sdkmath.NewInt(int64(l.state.AnnualRateBps)))
	delta := numerator.Quo(sdkmath.NewInt(secondsPerYear * bpsDenominator))
	if delta.IsZero() {
		return l.state.RatePerStake, false
	}

	return l.state.RatePerStake.Add(delta), true
}

// commitRate advances the accumulator to the already-computed rate and
// returns the rate-advanced observation, if any.
func (l *Ledger) commitRate(now int64, rate sdkmath.Int, advanced bool) []types.Event {
	var observations []types.Event
	if advanced {
		observations = append(observations, types.NewEvent(
			types.EventRateAdvanced, now,
			types.RateAdvancedPayload{OldRate: l.state.RatePerStake, NewRate: rate},
		))
	}
	l.state.RatePerStake = rate
	l.state.LastUpdateTime = now
	return observations
}

// availableForRewards is the custody balance beyond recorded principal,
// floored at zero. Principal is never payable as reward even if custody
// happens to hold it.
func (l *Ledger) availableForRewards(ctx context.Context) (sdkmath.Int, *types.Error) {
	balance, err := l.custodian.Balance(ctx)
	if err != nil {
		return sdkmath.Int{}, errCustodianFailure("balance query", err)
	}

	excess := balance.Sub(l.state.TotalStaked)
	if excess.IsNegative() {
		return sdkmath.ZeroInt(), nil
	}
	return excess, nil
}

// accruedValue is principal * rate / 10^18 with floor division.
func accruedValue(principal, rate sdkmath.Int) sdkmath.Int {
	return principal.Mul(rate).Quo(wad)
}

// earned returns the unsettled gain and the total accrued value of a record
// at the given rate.
func earned(record *StakeRecord, rate sdkmath.Int) (gain, totalValue sdkmath.Int) {
	if record == nil || record.Principal.IsZero() {
		return sdkmath.ZeroInt(), sdkmath.ZeroInt()
	}

	totalValue = accruedValue(record.Principal, rate)
	gain = totalValue.Sub(record.ClaimedValue)
	if gain.IsNegative() {
		gain = sdkmath.ZeroInt()
	}
	return gain, totalValue
}
