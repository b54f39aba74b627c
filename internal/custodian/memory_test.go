package custodian_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-io/reward-ledger/internal/custodian"
)

func TestMemoryCustodian(t *testing.T) {
	ctx := t.Context()

	t.Run("pull and push round trip", func(t *testing.T) {
		c := custodian.NewMemoryCustodian()
		c.Mint("alice", sdkmath.NewInt(100))

		require.NoError(t, c.Pull(ctx, "alice", sdkmath.NewInt(60)))
		balance, err := c.Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(60), balance)
		assert.Equal(t, sdkmath.NewInt(40), c.AccountBalance("alice"))

		require.NoError(t, c.Push(ctx, "bob", sdkmath.NewInt(25)))
		assert.Equal(t, sdkmath.NewInt(25), c.AccountBalance("bob"))
	})

	t.Run("insufficient balance rejected", func(t *testing.T) {
		c := custodian.NewMemoryCustodian()
		c.Mint("alice", sdkmath.NewInt(10))

		err := c.Pull(ctx, "alice", sdkmath.NewInt(11))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient balance")
		// nothing moved
		assert.Equal(t, sdkmath.NewInt(10), c.AccountBalance("alice"))
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		c := custodian.NewMemoryCustodian()
		require.Error(t, c.Pull(ctx, "alice", sdkmath.NewInt(-1)))
		require.Error(t, c.Push(ctx, "alice", sdkmath.NewInt(-1)))
	})

	t.Run("mint to vault enlarges custody only", func(t *testing.T) {
		c := custodian.NewMemoryCustodian()
		c.MintToVault(sdkmath.NewInt(500))

		balance, err := c.Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(500), balance)
	})
}
