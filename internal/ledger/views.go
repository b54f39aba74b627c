package ledger

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// Every view below takes the operation flag, so a custodian that reads the
// ledger from inside a transfer is rejected instead of observing
// not-yet-committed state.

// AvailableRewardsToClaim projects what ClaimRewards would pay the user
// right now: the rate recomputed as of now (without mutating it), the
// unsettled gain plus carried debt, capped at the custody excess.
func (l *Ledger) AvailableRewardsToClaim(ctx context.Context, user string) (sdkmath.Int, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return sdkmath.Int{}, err
	}
	defer release()

	now := l.clock().Unix()
	rate, _ := l.rateAt(now)

	record := l.stakes[user]
	gain, _ := earned(record, rate)

	debt := sdkmath.ZeroInt()
	if record != nil {
		debt = record.Debt
	}
	owed := gain.Add(debt)
	if owed.IsZero() {
		return sdkmath.ZeroInt(), nil
	}

	available, aerr := l.availableForRewards(ctx)
	if aerr != nil {
		return sdkmath.Int{}, aerr
	}
	return sdkmath.MinInt(owed, available), nil
}

// StakeStates returns a copy of the user's stake record; all-zero for a
// user that never staked.
func (l *Ledger) StakeStates(user string) (StakeRecord, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return StakeRecord{}, err
	}
	defer release()

	if record, ok := l.stakes[user]; ok {
		return *record, nil
	}
	return *newStakeRecord(), nil
}

// WithdrawStates returns a copy of the pending withdrawal request with the
// given id.
func (l *Ledger) WithdrawStates(id uint64) (WithdrawRequest, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return WithdrawRequest{}, err
	}
	defer release()

	if request, ok := l.withdrawals[id]; ok {
		return *request, nil
	}
	return WithdrawRequest{}, errWithdrawNotFound(id)
}

// PendingWithdrawals returns a copy of every request still cooling, keyed
// by id. Used by state snapshots.
func (l *Ledger) PendingWithdrawals() (map[uint64]WithdrawRequest, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	out := make(map[uint64]WithdrawRequest, len(l.withdrawals))
	for id, request := range l.withdrawals {
		out[id] = *request
	}
	return out, nil
}

// StakeRecords returns a copy of every stake record keyed by staker. Used
// by state snapshots.
func (l *Ledger) StakeRecords() (map[string]StakeRecord, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	out := make(map[string]StakeRecord, len(l.stakes))
	for staker, record := range l.stakes {
		out[staker] = *record
	}
	return out, nil
}

// SettleRate advances the global accumulator to now without settling any
// user. Driven by the background poller so the published rate stays fresh
// even across idle stretches.
func (l *Ledger) SettleRate(ctx context.Context) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	now := l.clock().Unix()
	rate, advanced := l.rateAt(now)
	l.emitAll(ctx, l.commitRate(now, rate, advanced))
	return nil
}
