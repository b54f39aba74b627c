package custodian

import (
	"context"
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"
)

// vaultAccount is the reserved account name holding custody funds.
const vaultAccount = "__vault__"

// MemoryCustodian is an in-process TokenCustodian keeping per-account
// balances in a map. It backs the simulator, the default server wiring and
// unit tests.
type MemoryCustodian struct {
	mu       sync.Mutex
	balances map[string]sdkmath.Int
}

func NewMemoryCustodian() *MemoryCustodian {
	return &MemoryCustodian{
		balances: make(map[string]sdkmath.Int),
	}
}

// Mint credits an account out of thin air. Test and simulation helper.
func (c *MemoryCustodian) Mint(account string, amount sdkmath.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.balances[account] = c.balanceOf(account).Add(amount)
}

// MintToVault credits custody directly without a ledger operation, e.g. to
// model funds sent to the custodian out of band.
func (c *MemoryCustodian) MintToVault(amount sdkmath.Int) {
	c.Mint(vaultAccount, amount)
}

func (c *MemoryCustodian) Pull(_ context.Context, from string, amount sdkmath.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.transfer(from, vaultAccount, amount)
}

func (c *MemoryCustodian) Push(_ context.Context, to string, amount sdkmath.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.transfer(vaultAccount, to, amount)
}

func (c *MemoryCustodian) Balance(_ context.Context) (sdkmath.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.balanceOf(vaultAccount), nil
}

// AccountBalance reports the free (non-custodied) balance of an account.
func (c *MemoryCustodian) AccountBalance(account string) sdkmath.Int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.balanceOf(account)
}

func (c *MemoryCustodian) balanceOf(account string) sdkmath.Int {
	if balance, ok := c.balances[account]; ok {
		return balance
	}
	return sdkmath.ZeroInt()
}

// transfer moves amount between accounts. Callers must hold mu.
func (c *MemoryCustodian) transfer(from, to string, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("transfer amount %s is negative", amount)
	}

	fromBalance := c.balanceOf(from)
	if fromBalance.LT(amount) {
		return fmt.Errorf("insufficient balance: %s has %s, need %s", from, fromBalance, amount)
	}

	c.balances[from] = fromBalance.Sub(amount)
	c.balances[to] = c.balanceOf(to).Add(amount)
	return nil
}
