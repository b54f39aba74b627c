package ledger

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// Stake settles the caller, pulls amount into custody and adds it to the
// caller's principal. The new principal starts accruing from this instant;
// the claimed-value checkpoint is re-baselined so it earns nothing
// retroactively.
func (l *Ledger) Stake(ctx context.Context, caller string, amount sdkmath.Int) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	if amount.LT(l.state.MinStake) || !amount.IsPositive() {
		return errBelowMinStake(amount, l.state.MinStake)
	}

	now := l.clock().Unix()
	s, serr := l.computeSettlement(ctx, caller, now)
	if serr != nil {
		return serr
	}

	if pullErr := l.custodian.Pull(ctx, caller, amount); pullErr != nil {
		return errCustodianFailure("stake deposit", pullErr)
	}
	if payErr := l.payReward(ctx, caller, s); payErr != nil {
		// The deposit already moved; send it back so the failed
		// operation leaves no external effect either.
		if refundErr := l.custodian.Push(ctx, caller, amount); refundErr != nil {
			log.Ctx(ctx).Error().Err(refundErr).
				Str("staker", caller).
				Str("amount", amount.String()).
				Msg("failed to refund stake deposit after payout failure")
			return errStrandedDeposit(caller, amount, payErr, refundErr)
		}
		return payErr
	}

	observations := l.applySettlement(caller, s)

	record := l.ensureRecord(caller)
	record.Principal = record.Principal.Add(amount)
	l.state.TotalStaked = l.state.TotalStaked.Add(amount)
	l.rebaseline(record)

	observations = append(observations, types.NewEvent(
		types.EventStakeRecorded, now,
		types.StakeRecordedPayload{Staker: caller, Amount: amount, Principal: record.Principal},
	))
	l.emitAll(ctx, observations)
	return nil
}

// ClaimRewards settles the caller and pays whatever of the accrued gain plus
// carried debt the custody excess can cover. A no-op if nothing is owed.
func (l *Ledger) ClaimRewards(ctx context.Context, caller string) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	now := l.clock().Unix()
	s, serr := l.computeSettlement(ctx, caller, now)
	if serr != nil {
		return serr
	}
	if payErr := l.payReward(ctx, caller, s); payErr != nil {
		return payErr
	}

	l.emitAll(ctx, l.applySettlement(caller, s))
	return nil
}

// DonateTokensToRewards pulls amount into custody without any ledger
// bookkeeping. It enlarges the reward-payable excess for all stakers
// collectively.
func (l *Ledger) DonateTokensToRewards(ctx context.Context, caller string, amount sdkmath.Int) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	if !amount.IsPositive() {
		return errNonPositiveAmount("donation", amount)
	}

	now := l.clock().Unix()
	if pullErr := l.custodian.Pull(ctx, caller, amount); pullErr != nil {
		return errCustodianFailure("donation deposit", pullErr)
	}

	l.emitAll(ctx, []types.Event{types.NewEvent(
		types.EventTokensDonated, now,
		types.TokensDonatedPayload{Donor: caller, Amount: amount},
	)})
	return nil
}
