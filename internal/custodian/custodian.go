package custodian

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// TokenCustodian holds the staked asset on behalf of the ledger. The ledger
// never touches balances directly: it pulls deposits in, pushes payouts out
// and reads its own custody balance to decide what is payable.
type TokenCustodian interface {
	// Pull transfers amount from the given account into custody.
	Pull(ctx context.Context, from string, amount sdkmath.Int) error
	// Push transfers amount from custody to the given account.
	Push(ctx context.Context, to string, amount sdkmath.Int) error
	// Balance reports the total amount currently held in custody.
	Balance(ctx context.Context) (sdkmath.Int, error)
}
