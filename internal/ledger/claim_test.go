package ledger_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-io/reward-ledger/internal/types"
)

func TestClaimRewards(t *testing.T) {
	ctx := t.Context()

	t.Run("funded pool pays in full", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 300)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(300)))

		f.clock.Advance(secondsPerYear)
		f.fundRewards(1000)
		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))

		assert.Equal(t, sdkmath.NewInt(300), f.custodian.AccountBalance("alice"))
		record := f.stakeStates(t, "alice")
		assert.True(t, record.Debt.IsZero())
		assert.Equal(t, sdkmath.NewInt(600), record.ClaimedValue)

		paid := f.recorder.OfType(types.EventRewardsPaid)
		require.Len(t, paid, 1)
		assert.Equal(t, sdkmath.NewInt(300), paid[0].Payload.(types.RewardsPaidPayload).Amount)
	})

	t.Run("idempotent at the same timestamp", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 300)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(300)))

		f.clock.Advance(secondsPerYear)
		f.fundRewards(1000)
		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))

		stateBefore := f.globalState(t)
		recordBefore := f.stakeStates(t, "alice")
		f.recorder.Reset()

		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))
		assert.Empty(t, f.recorder.Events())
		assert.Equal(t, stateBefore, f.globalState(t))
		assert.Equal(t, recordBefore, f.stakeStates(t, "alice"))
	})

	t.Run("unknown staker is a no-op", func(t *testing.T) {
		f := newFixture(10000, 1)
		require.Nil(t, f.ledger.ClaimRewards(ctx, "nobody"))
		assert.Empty(t, f.recorder.Events())
	})

	t.Run("underfunded pool pays partially and carries debt", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 300)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(300)))

		// one year accrues exactly 300, but only 100 of excess exists
		f.clock.Advance(secondsPerYear)
		f.fundRewards(100)
		f.recorder.Reset()
		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))

		assert.Equal(t, sdkmath.NewInt(100), f.custodian.AccountBalance("alice"))
		record := f.stakeStates(t, "alice")
		assert.Equal(t, sdkmath.NewInt(200), record.Debt)
		// the accrual is recognized even though it was not fully paid
		assert.Equal(t, sdkmath.NewInt(600), record.ClaimedValue)

		debtChanges := f.recorder.OfType(types.EventDebtChanged)
		require.Len(t, debtChanges, 1)
		debtPayload := debtChanges[0].Payload.(types.DebtChangedPayload)
		assert.True(t, debtPayload.OldDebt.IsZero())
		assert.Equal(t, sdkmath.NewInt(200), debtPayload.NewDebt)

		paid := f.recorder.OfType(types.EventRewardsPaid)
		require.Len(t, paid, 1)
		assert.Equal(t, sdkmath.NewInt(100), paid[0].Payload.(types.RewardsPaidPayload).Amount)
	})

	t.Run("empty pool defers everything and pays nothing", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 300)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(300)))

		f.clock.Advance(secondsPerYear)
		f.recorder.Reset()
		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))

		assert.True(t, f.custodian.AccountBalance("alice").IsZero())
		assert.Equal(t, sdkmath.NewInt(300), f.stakeStates(t, "alice").Debt)
		assert.Empty(t, f.recorder.OfType(types.EventRewardsPaid))
		require.Len(t, f.recorder.OfType(types.EventDebtChanged), 1)
	})

	t.Run("donation clears carried debt on the next settlement", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 300)
		f.fund("donor", 1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(300)))

		f.clock.Advance(secondsPerYear)
		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))
		require.Equal(t, sdkmath.NewInt(300), f.stakeStates(t, "alice").Debt)

		// donate enough to cover the debt; same timestamp, so the next
		// settlement pays exactly the carried debt
		require.Nil(t, f.ledger.DonateTokensToRewards(ctx, "donor", sdkmath.NewInt(1000)))
		f.recorder.Reset()
		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))

		assert.Equal(t, sdkmath.NewInt(300), f.custodian.AccountBalance("alice"))
		assert.True(t, f.stakeStates(t, "alice").Debt.IsZero())

		debtChanges := f.recorder.OfType(types.EventDebtChanged)
		require.Len(t, debtChanges, 1)
		debtPayload := debtChanges[0].Payload.(types.DebtChangedPayload)
		assert.Equal(t, sdkmath.NewInt(300), debtPayload.OldDebt)
		assert.True(t, debtPayload.NewDebt.IsZero())
	})

	t.Run("settlement frequency does not change totals", func(t *testing.T) {
		// alice claims every quarter, bob claims once; telescoping
		// checkpoints make their totals identical
		f := newFixture(2000, 1)
		f.fund("alice", 1_000_000)
		f.fund("bob", 1_000_000)
		f.fundRewards(10_000_000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1_000_000)))
		require.Nil(t, f.ledger.Stake(ctx, "bob", sdkmath.NewInt(1_000_000)))

		for range 4 {
			f.clock.Advance(secondsPerYear / 4)
			require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))
		}
		require.Nil(t, f.ledger.ClaimRewards(ctx, "bob"))

		assert.Equal(t, f.custodian.AccountBalance("bob"), f.custodian.AccountBalance("alice"))
	})

	t.Run("claimable projection matches the payable branch", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 300)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(300)))

		f.clock.Advance(secondsPerYear)
		f.fundRewards(100)

		claimable, err := f.ledger.AvailableRewardsToClaim(ctx, "alice")
		require.Nil(t, err)
		assert.Equal(t, sdkmath.NewInt(100), claimable)

		// the projection must not have advanced the rate
		assert.Equal(t, sdkmath.NewInt(300), f.stakeStates(t, "alice").ClaimedValue)

		require.Nil(t, f.ledger.ClaimRewards(ctx, "alice"))
		assert.Equal(t, claimable, f.custodian.AccountBalance("alice"))
	})
}
