package ledger_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-io/reward-ledger/internal/ledger"
	"github.com/custodia-io/reward-ledger/internal/types"
)

func TestRateAccumulator(t *testing.T) {
	ctx := t.Context()

	t.Run("frozen while pool is empty", func(t *testing.T) {
		f := newFixture(2000, 1)

		f.clock.Advance(30 * day)
		require.Nil(t, f.ledger.SettleRate(ctx))

		state := f.globalState(t)
		assert.Equal(t, ledger.Wad(), state.RatePerStake)
		assert.Equal(t, f.clock.now, state.LastUpdateTime)
		assert.Empty(t, f.recorder.OfType(types.EventRateAdvanced))
	})

	t.Run("one day at 2000 bps", func(t *testing.T) {
		f := newFixture(2000, 1)
		f.fund("alice", 1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		f.clock.Advance(day)
		require.Nil(t, f.ledger.SettleRate(ctx))

		// 10^18 + 10^18 * 86400 * 2000 / (31536000 * 10000)
		expected, ok := sdkmath.NewIntFromString("1000547945205479452")
		require.True(t, ok)
		assert.Equal(t, expected, f.globalState(t).RatePerStake)

		advances := f.recorder.OfType(types.EventRateAdvanced)
		require.Len(t, advances, 1)
		payload := advances[0].Payload.(types.RateAdvancedPayload)
		assert.Equal(t, ledger.Wad(), payload.OldRate)
		assert.Equal(t, expected, payload.NewRate)
	})

	t.Run("same timestamp is a no-op", func(t *testing.T) {
		f := newFixture(2000, 1)
		f.fund("alice", 1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		f.clock.Advance(day)
		require.Nil(t, f.ledger.SettleRate(ctx))
		rate := f.globalState(t).RatePerStake

		f.recorder.Reset()
		require.Nil(t, f.ledger.SettleRate(ctx))
		assert.Equal(t, rate, f.globalState(t).RatePerStake)
		assert.Empty(t, f.recorder.Events())
	})

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		f := newFixture(10000, 1)
		f.fund("alice", 1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		previous := f.globalState(t).RatePerStake
		for range 50 {
			f.clock.Advance(3600)
			require.Nil(t, f.ledger.SettleRate(ctx))
			current := f.globalState(t).RatePerStake
			assert.True(t, current.GTE(previous))
			previous = current
		}
	})

	t.Run("compounds across settlements", func(t *testing.T) {
		// Settling twice applies the second interval to the already
		// advanced rate, so the rate itself is the compounding term.
		f := newFixture(10000, 1)
		f.fund("alice", 1000)
		require.Nil(t, f.ledger.Stake(ctx, "alice", sdkmath.NewInt(1000)))

		f.clock.Advance(secondsPerYear)
		require.Nil(t, f.ledger.SettleRate(ctx))
		afterOneYear := f.globalState(t).RatePerStake
		assert.Equal(t, ledger.Wad().MulRaw(2), afterOneYear)

		f.clock.Advance(secondsPerYear)
		require.Nil(t, f.ledger.SettleRate(ctx))
		afterTwoYears := f.globalState(t).RatePerStake
		assert.Equal(t, ledger.Wad().MulRaw(4), afterTwoYears)
	})
}
