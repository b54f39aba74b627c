package ledger

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/types"
)

// SetMinStake updates the minimum accepted stake. Manager-gated; a no-op
// change is rejected so every successful update is observable.
func (l *Ledger) SetMinStake(ctx context.Context, caller string, minStake sdkmath.Int) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	if !l.gate.HasRole(caller, access.RoleManager) {
		return errMissingRole(caller, access.RoleManager)
	}
	if minStake.IsNegative() {
		return errNonPositiveAmount("min stake", minStake)
	}
	if minStake.Equal(l.state.MinStake) {
		return errParamUnchanged("min stake")
	}

	now := l.clock().Unix()
	oldMinStake := l.state.MinStake
	l.state.MinStake = minStake

	l.emitAll(ctx, []types.Event{types.NewEvent(
		types.EventMinStakeChanged, now,
		types.MinStakeChangedPayload{OldMinStake: oldMinStake, NewMinStake: minStake},
	)})
	return nil
}

// SetAnnualRateBps updates the annual reward rate. Manager-gated. The
// accumulator is settled first so time already elapsed stays locked in at
// the old rate before the new one takes effect.
func (l *Ledger) SetAnnualRateBps(ctx context.Context, caller string, rateBps uint32) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	if !l.gate.HasRole(caller, access.RoleManager) {
		return errMissingRole(caller, access.RoleManager)
	}
	if rateBps > MaxAnnualRateBps {
		return errRateAboveCeiling(rateBps)
	}
	if rateBps == l.state.AnnualRateBps {
		return errParamUnchanged("annual rate")
	}

	now := l.clock().Unix()
	rate, advanced := l.rateAt(now)
	observations := l.commitRate(now, rate, advanced)

	oldRateBps := l.state.AnnualRateBps
	l.state.AnnualRateBps = rateBps

	observations = append(observations, types.NewEvent(
		types.EventRateParamChanged, now,
		types.RateParamChangedPayload{OldRateBps: oldRateBps, NewRateBps: rateBps},
	))
	l.emitAll(ctx, observations)
	return nil
}

// ReceiveExcessiveBalance sweeps up to amount of the custody excess to the
// caller. Admin-gated. Amounts above the available excess clamp silently,
// and a zero payout is a silent no-op; per-user records and debts are left
// untouched. Returns the amount actually paid.
func (l *Ledger) ReceiveExcessiveBalance(ctx context.Context, caller string, amount sdkmath.Int) (sdkmath.Int, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return sdkmath.Int{}, err
	}
	defer release()

	if !l.gate.HasRole(caller, access.RoleAdmin) {
		return sdkmath.Int{}, errMissingRole(caller, access.RoleAdmin)
	}
	if amount.IsNegative() {
		return sdkmath.Int{}, errNonPositiveAmount("excess sweep", amount)
	}

	now := l.clock().Unix()
	available, aerr := l.availableForRewards(ctx)
	if aerr != nil {
		return sdkmath.Int{}, aerr
	}

	payout := sdkmath.MinInt(amount, available)
	if payout.IsZero() {
		return sdkmath.ZeroInt(), nil
	}

	if pushErr := l.custodian.Push(ctx, caller, payout); pushErr != nil {
		return sdkmath.Int{}, errCustodianFailure("excess sweep", pushErr)
	}

	l.emitAll(ctx, []types.Event{types.NewEvent(
		types.EventExcessWithdrawn, now,
		types.ExcessWithdrawnPayload{Recipient: caller, Amount: payout},
	)})
	return payout, nil
}
