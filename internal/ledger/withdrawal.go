package ledger

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// RequestWithdraw settles the caller, moves amount of principal out of
// accrual into a cooling withdrawal request and returns the request id.
// The locked amount stops earning and stops counting as principal, but
// stays in custody until finalize.
func (l *Ledger) RequestWithdraw(ctx context.Context, caller string, amount sdkmath.Int) (uint64, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	if !amount.IsPositive() {
		return 0, errZeroWithdrawAmount()
	}
	principal := sdkmath.ZeroInt()
	if record, ok := l.stakes[caller]; ok {
		principal = record.Principal
	}
	if amount.GT(principal) {
		return 0, errWithdrawExceedsPrincipal(amount, principal)
	}

	now := l.clock().Unix()
	s, serr := l.computeSettlement(ctx, caller, now)
	if serr != nil {
		return 0, serr
	}
	if payErr := l.payReward(ctx, caller, s); payErr != nil {
		return 0, payErr
	}

	observations := l.applySettlement(caller, s)

	record := l.stakes[caller]
	record.Principal = record.Principal.Sub(amount)
	l.state.TotalStaked = l.state.TotalStaked.Sub(amount)
	l.rebaseline(record)

	id := l.state.NextWithdrawID
	l.state.NextWithdrawID++
	l.withdrawals[id] = &WithdrawRequest{
		Owner:       caller,
		RequestTime: now,
		Amount:      amount,
	}

	observations = append(observations, types.NewEvent(
		types.EventWithdrawRequested, now,
		types.WithdrawRequestedPayload{ID: id, Owner: caller, Amount: amount},
	))
	l.emitAll(ctx, observations)
	return id, nil
}

// FinalizeWithdraw pays the locked principal back to the request owner once
// the cooling period has elapsed and erases the request. Ids are never
// reused.
func (l *Ledger) FinalizeWithdraw(ctx context.Context, caller string, id uint64) *types.Error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()

	request, ok := l.withdrawals[id]
	if !ok {
		return errWithdrawNotFound(id)
	}
	if request.Owner != caller {
		return errWrongWithdrawOwner(id, caller)
	}

	now := l.clock().Unix()
	finalizableAt := request.RequestTime + int64(l.coolingPeriod/time.Second)
	if now < finalizableAt {
		return errCoolingPeriodActive(id, now, finalizableAt)
	}

	// Erase before paying so the request cannot be finalized twice; the
	// failed-payout path restores it to keep the operation atomic.
	delete(l.withdrawals, id)
	if pushErr := l.custodian.Push(ctx, caller, request.Amount); pushErr != nil {
		l.withdrawals[id] = request
		return errCustodianFailure("withdrawal payout", pushErr)
	}

	l.emitAll(ctx, []types.Event{types.NewEvent(
		types.EventWithdrawFinalized, now,
		types.WithdrawFinalizedPayload{ID: id, Owner: caller, Amount: request.Amount},
	)})
	return nil
}
