package ledger

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// settlement is the fully computed outcome of settling one staker at one
// instant. It is built from reads only; nothing mutates until apply.
type settlement struct {
	now          int64
	rate         sdkmath.Int
	rateAdvanced bool

	totalValue sdkmath.Int
	gain       sdkmath.Int
	owed       sdkmath.Int
	payout     sdkmath.Int
	newDebt    sdkmath.Int
}

// computeSettlement advances the rate to now (in locals), recomputes the
// caller's accrued gain and splits gain + carried debt into the payable part
// and the remainder. The split is evaluated fresh against current excess
// custody funds on every settlement, so carried debt is retried each time.
func (l *Ledger) computeSettlement(ctx context.Context, caller string, now int64) (*settlement, *types.Error) {
	rate, advanced := l.rateAt(now)

	record := l.stakes[caller]
	gain, totalValue := earned(record, rate)

	debt := sdkmath.ZeroInt()
	if record != nil {
		debt = record.Debt
	}
	owed := gain.Add(debt)

	s := &settlement{
		now:          now,
		rate:         rate,
		rateAdvanced: advanced,
		totalValue:   totalValue,
		gain:         gain,
		owed:         owed,
		payout:       sdkmath.ZeroInt(),
		newDebt:      debt,
	}
	if owed.IsZero() {
		return s, nil
	}

	available, err := l.availableForRewards(ctx)
	if err != nil {
		return nil, err
	}

	// Three-way split: pay in full, pay partially carrying the rest as
	// debt, or defer everything.
	if available.GTE(owed) {
		s.payout = owed
		s.newDebt = sdkmath.ZeroInt()
	} else {
		s.payout = available
		s.newDebt = owed.Sub(available)
	}
	return s, nil
}

// payReward pushes the payable part of a settlement to the recipient.
// Called before apply; a failure aborts the operation with no mutation.
func (l *Ledger) payReward(ctx context.Context, recipient string, s *settlement) *types.Error {
	if !s.payout.IsPositive() {
		return nil
	}
	if err := l.custodian.Push(ctx, recipient, s.payout); err != nil {
		return errCustodianFailure("reward payout", err)
	}
	return nil
}

// applySettlement commits the settlement: rate advance, claimed-value
// checkpoint and the new debt. Returns the observations in emission order.
func (l *Ledger) applySettlement(caller string, s *settlement) []types.Event {
	observations := l.commitRate(s.now, s.rate, s.rateAdvanced)

	record, ok := l.stakes[caller]
	if !ok {
		// Nothing has ever accrued for this caller; only the rate
		// advance commits.
		return observations
	}
	oldDebt := record.Debt

	// The accrual is recognized unconditionally, whether or not it could
	// be paid right now.
	if s.gain.IsPositive() {
		record.ClaimedValue = s.totalValue
	}
	record.Debt = s.newDebt

	if !record.Debt.Equal(oldDebt) {
		observations = append(observations, types.NewEvent(
			types.EventDebtChanged, s.now,
			types.DebtChangedPayload{Staker: caller, OldDebt: oldDebt, NewDebt: record.Debt},
		))
	}
	if s.payout.IsPositive() {
		observations = append(observations, types.NewEvent(
			types.EventRewardsPaid, s.now,
			types.RewardsPaidPayload{Recipient: caller, Amount: s.payout},
		))
	}
	return observations
}

func (l *Ledger) ensureRecord(caller string) *StakeRecord {
	record, ok := l.stakes[caller]
	if !ok {
		record = newStakeRecord()
		l.stakes[caller] = record
	}
	return record
}

// rebaseline recomputes the claimed-value checkpoint after a principal
// change so the new principal does not retroactively earn past rewards.
func (l *Ledger) rebaseline(record *StakeRecord) {
	record.ClaimedValue = accruedValue(record.Principal, l.state.RatePerStake)
}

func (l *Ledger) emitAll(ctx context.Context, observations []types.Event) {
	for _, observation := range observations {
		l.emitter.Emit(ctx, observation)
	}
}
