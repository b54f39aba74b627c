package ledger

import (
	"fmt"
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/types"
)

func errReentrantCall() *types.Error {
	return types.NewErrorWithMsg(
		http.StatusConflict,
		types.ReentrantCall,
		"ledger operation already in progress",
	)
}

func errBelowMinStake(amount, minStake sdkmath.Int) *types.Error {
	return types.NewValidationFailedError(
		fmt.Errorf("stake amount %s is below the minimum stake %s", amount, minStake),
	)
}

func errZeroWithdrawAmount() *types.Error {
	return types.NewValidationFailedError(
		fmt.Errorf("withdrawal amount must be positive"),
	)
}

func errWithdrawExceedsPrincipal(amount, principal sdkmath.Int) *types.Error {
	return types.NewValidationFailedError(
		fmt.Errorf("withdrawal amount %s exceeds staked principal %s", amount, principal),
	)
}

func errWithdrawNotFound(id uint64) *types.Error {
	return types.NewError(
		http.StatusNotFound,
		types.NotFound,
		fmt.Errorf("withdrawal request %d does not exist", id),
	)
}

func errWrongWithdrawOwner(id uint64, caller string) *types.Error {
	return types.NewError(
		http.StatusForbidden,
		types.WrongOwner,
		fmt.Errorf("caller %s does not own withdrawal request %d", caller, id),
	)
}

func errCoolingPeriodActive(id uint64, now, finalizableAt int64) *types.Error {
	return types.NewError(
		http.StatusConflict,
		types.CoolingPeriodActive,
		fmt.Errorf("withdrawal request %d not finalizable: now %d, finalizable at %d", id, now, finalizableAt),
	)
}

func errMissingRole(caller string, role access.Role) *types.Error {
	return types.NewError(
		http.StatusForbidden,
		types.Unauthorized,
		fmt.Errorf("caller %s lacks role %s", caller, role),
	)
}

func errParamUnchanged(param string) *types.Error {
	return types.NewValidationFailedError(
		fmt.Errorf("%s already has the requested value", param),
	)
}

func errRateAboveCeiling(bps uint32) *types.Error {
	return types.NewValidationFailedError(
		fmt.Errorf("annual rate %d bps exceeds the ceiling of %d bps", bps, MaxAnnualRateBps),
	)
}

func errNonPositiveAmount(op string, amount sdkmath.Int) *types.Error {
	return types.NewValidationFailedError(
		fmt.Errorf("%s amount %s must be positive", op, amount),
	)
}

func errCustodianFailure(op string, err error) *types.Error {
	return types.NewInternalServiceError(
		fmt.Errorf("custodian %s failed: %w", op, err),
	)
}

// errStrandedDeposit reports a deposit left in custody with no principal
// credited: the reward payout failed and the compensating refund failed
// too. Manual reconciliation is required to return the funds.
func errStrandedDeposit(staker string, amount sdkmath.Int, payErr, refundErr error) *types.Error {
	return types.NewInternalServiceError(
		fmt.Errorf(
			"stake deposit of %s from %s stranded in custody, manual reconciliation required (payout: %w; refund: %v)",
			amount, staker, payErr, refundErr,
		),
	)
}
