package ledger_test

import (
	"context"
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/ledger"
	"github.com/custodia-io/reward-ledger/internal/types"
)

func TestStake(t *testing.T) {
	ctx := t.Context()

	t.Run("below minimum rejected", func(t *testing.T) {
		f := newFixture(2000, 100)
		f.fund("alice", 1000)

		err := f.ledger.Stake(ctx, "alice", sdkmath.NewInt(99))
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationError, err.ErrorCode)
		assert.Contains(t, err.Error(), "99")
		assert.Contains(t, err.Error(), "100")
	})

	t.Run("first stake creates the record", func(t *testing.T) {
		f := newFixture(2000, 100)
		f.fund("alice", 1000)

		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(400)))

		record := f.stakeStates(t, "alice")
		assert.Equal(t, sdkmath.NewInt(400), record.Principal)
		assert.Equal(t, sdkmath.NewInt(400), record.ClaimedValue)
		assert.True(t, record.Debt.IsZero())

		assert.Equal(t, sdkmath.NewInt(400), f.globalState(t).TotalStaked)
		assert.Equal(t, sdkmath.NewInt(600), f.custodian.AccountBalance("alice"))

		staked := f.recorder.OfType(types.EventStakeRecorded)
		require.Len(t, staked, 1)
		payload := staked[0].Payload.(types.StakeRecordedPayload)
		assert.Equal(t, sdkmath.NewInt(400), payload.Amount)
		assert.Equal(t, sdkmath.NewInt(400), payload.Principal)
	})

	t.Run("insufficient funds abort without mutation", func(t *testing.T) {
		f := newFixture(2000, 100)
		f.fund("alice", 100)

		err := f.ledger.Stake(ctx, "alice", sdkmath.NewInt(500))
		require.NotNil(t, err)
		assert.Equal(t, types.InternalServiceError, err.ErrorCode)
		assert.True(t, f.globalState(t).TotalStaked.IsZero())
		assert.True(t, f.stakeStates(t, "alice").Principal.IsZero())
	})

	t.Run("topping up re-baselines the checkpoint", func(t *testing.T) {
		// 10000 bps for exactly one year doubles the rate, so a 1000
		// stake accrues exactly 1000
		f := newFixture(10000, 1)
		f.fund("alice", 2000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		f.clock.Advance(secondsPerYear)
		f.fundRewards(1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		// the pending 1000 units were paid out during settlement; the
		// new principal must not earn any of the past accrual
		assert.Equal(t, sdkmath.NewInt(1000), f.custodian.AccountBalance("alice"))

		record := f.stakeStates(t, "alice")
		claimable, cerr := f.ledger.AvailableRewardsToClaim(ctx, "alice")
		require.Nil(t, cerr)
		assert.True(t, claimable.IsZero())
		assert.True(t, record.Debt.IsZero())
	})

	t.Run("late joiner earns nothing retroactively", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 1000)
		f.fund("bob", 1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		f.clock.Advance(secondsPerYear)
		require.Nil(t, f.ledger.Stake(ctx, "bob", sdkmath.NewInt(1000)))

		f.fundRewards(10_000)
		aliceClaimable, err := f.ledger.AvailableRewardsToClaim(ctx, "alice")
		require.Nil(t, err)
		bobClaimable, err := f.ledger.AvailableRewardsToClaim(ctx, "bob")
		require.Nil(t, err)

		assert.Equal(t, sdkmath.NewInt(1000), aliceClaimable)
		assert.True(t, bobClaimable.IsZero())
	})
}

// brokenPushCustodian accepts deposits but fails every outbound transfer.
type brokenPushCustodian struct {
	*custodian.MemoryCustodian
}

func (c *brokenPushCustodian) Push(ctx context.Context, to string, amount sdkmath.Int) error {
	return errors.New("push wire down")
}

func TestStakeStrandedDepositSurfaced(t *testing.T) {
	ctx := t.Context()

	cust := &brokenPushCustodian{MemoryCustodian: custodian.NewMemoryCustodian()}
	clock := &fakeClock{now: 1_700_000_000}
	gate := access.NewStaticGate(nil, nil)
	l := ledger.New(cust, gate, 10000, sdkmath.OneInt(), ledger.WithClock(clock.Now))

	cust.Mint("alice", sdkmath.NewInt(600))
	require.Nil(t, l.Stake(ctx, "alice", sdkmath.NewInt(300)))

	clock.Advance(secondsPerYear)
	cust.MintToVault(sdkmath.NewInt(1000))

	// the second stake owes a settlement payout; both the payout push and
	// the compensating refund fail, so the deposit stays in custody with
	// no principal credited and the caller is told to reconcile manually
	err := l.Stake(ctx, "alice", sdkmath.NewInt(300))
	require.NotNil(t, err)
	assert.Equal(t, types.InternalServiceError, err.ErrorCode)
	assert.Contains(t, err.Error(), "manual reconciliation")

	record, verr := l.StakeStates("alice")
	require.Nil(t, verr)
	assert.Equal(t, sdkmath.NewInt(300), record.Principal)
	state, serr := l.GlobalStateView()
	require.Nil(t, serr)
	assert.Equal(t, sdkmath.NewInt(300), state.TotalStaked)
}

func TestDonateTokensToRewards(t *testing.T) {
	ctx := t.Context()

	t.Run("moves tokens without bookkeeping", func(t *testing.T) {
		f := newFixture(2000, 1)
		f.fund("donor", 500)

		require.Nil(t, f.ledger.DonateTokensToRewards(ctx, "donor", sdkmath.NewInt(500)))

		balance, err := f.custodian.Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(500), balance)
		assert.True(t, f.globalState(t).TotalStaked.IsZero())
		assert.True(t, f.stakeStates(t, "donor").Principal.IsZero())

		donated := f.recorder.OfType(types.EventTokensDonated)
		require.Len(t, donated, 1)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		f := newFixture(2000, 1)

		err := f.ledger.DonateTokensToRewards(ctx, "donor", sdkmath.ZeroInt())
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationError, err.ErrorCode)
	})

	t.Run("pull failure propagates", func(t *testing.T) {
		f := newFixture(2000, 1)

		err := f.ledger.DonateTokensToRewards(ctx, "donor", sdkmath.NewInt(10))
		require.NotNil(t, err)
		assert.Equal(t, types.InternalServiceError, err.ErrorCode)
		assert.Empty(t, f.recorder.OfType(types.EventTokensDonated))
	})
}
