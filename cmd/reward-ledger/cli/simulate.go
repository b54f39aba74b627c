package cli

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/ledger"
)

var (
	simStakers int
	simOps     int
	simRateBps uint32
	simSeed    uint64
)

// SimulateCmd drives a synthetic workload against an in-memory ledger and
// verifies the bookkeeping invariants after every operation. Useful for
// eyeballing accrual behavior without a full deployment.
func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Runs a synthetic stake/claim/withdraw workload against an in-memory ledger",
		Args:  cobra.ExactArgs(0),
		RunE:  simulate,
	}

	cmd.Flags().IntVar(&simStakers, "stakers", 10, "number of synthetic stakers")
	cmd.Flags().IntVar(&simOps, "ops", 500, "number of operations to run")
	cmd.Flags().Uint32Var(&simRateBps, "rate-bps", 2000, "annual reward rate in basis points")
	cmd.Flags().Uint64Var(&simSeed, "seed", 0, "random seed (0 picks one)")

	return cmd
}

func simulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	faker := gofakeit.New(simSeed)

	now := time.Now().Unix()
	clock := func() time.Time { return time.Unix(now, 0) }

	memCustodian := custodian.NewMemoryCustodian()
	gate := access.NewStaticGate([]string{"admin"}, []string{"manager"})
	l := ledger.New(
		memCustodian,
		gate,
		simRateBps,
		sdkmath.NewInt(100),
		ledger.WithClock(clock),
	)

	stakers := make([]string, simStakers)
	for i := range stakers {
		stakers[i] = faker.LetterN(10)
		memCustodian.Mint(stakers[i], sdkmath.NewInt(1_000_000))
	}
	memCustodian.MintToVault(sdkmath.NewInt(10_000_000))

	var requests []uint64
	for i := 0; i < simOps; i++ {
		// advance time by up to a day between operations
		now += int64(faker.Number(1, 86_400))

		staker := stakers[faker.Number(0, simStakers-1)]
		switch faker.Number(0, 4) {
		case 0, 1:
			amount := sdkmath.NewInt(int64(faker.Number(100, 10_000)))
			if err := l.Stake(ctx, staker, amount); err != nil {
				log.Debug().Err(err).Msg("stake rejected")
			}
		case 2:
			if err := l.ClaimRewards(ctx, staker); err != nil {
				log.Debug().Err(err).Msg("claim rejected")
			}
		case 3:
			record, verr := l.StakeStates(staker)
			if verr != nil {
				return verr
			}
			principal := record.Principal
			if !principal.IsPositive() {
				continue
			}
			amount := principal.QuoRaw(2)
			if !amount.IsPositive() {
				continue
			}
			id, err := l.RequestWithdraw(ctx, staker, amount)
			if err != nil {
				log.Debug().Err(err).Msg("withdraw request rejected")
				continue
			}
			requests = append(requests, id)
		case 4:
			if len(requests) == 0 {
				continue
			}
			id := requests[0]
			request, verr := l.WithdrawStates(id)
			if verr != nil {
				requests = requests[1:]
				continue
			}
			if err := l.FinalizeWithdraw(ctx, request.Owner, id); err != nil {
				log.Debug().Err(err).Msg("finalize rejected")
				continue
			}
			requests = requests[1:]
		}

		if err := checkInvariants(l); err != nil {
			return fmt.Errorf("invariant violated after operation %d: %w", i, err)
		}
	}

	state, verr := l.GlobalStateView()
	if verr != nil {
		return verr
	}
	records, verr := l.StakeRecords()
	if verr != nil {
		return verr
	}
	pending, verr := l.PendingWithdrawals()
	if verr != nil {
		return verr
	}
	totalDebt := sdkmath.ZeroInt()
	for _, record := range records {
		totalDebt = totalDebt.Add(record.Debt)
	}

	fmt.Printf("operations:          %d\n", simOps)
	fmt.Printf("stakers:             %d\n", simStakers)
	fmt.Printf("total staked:        %s\n", state.TotalStaked)
	fmt.Printf("rate accumulator:    %s\n", state.RatePerStake)
	fmt.Printf("outstanding debt:    %s\n", totalDebt)
	fmt.Printf("pending withdrawals: %d\n", len(pending))
	fmt.Println("all invariants held")

	return nil
}

func checkInvariants(l *ledger.Ledger) error {
	state, verr := l.GlobalStateView()
	if verr != nil {
		return verr
	}
	records, verr := l.StakeRecords()
	if verr != nil {
		return verr
	}

	sum := sdkmath.ZeroInt()
	for staker, record := range records {
		if record.Principal.IsNegative() {
			return fmt.Errorf("staker %s has negative principal %s", staker, record.Principal)
		}
		if record.Debt.IsNegative() {
			return fmt.Errorf("staker %s has negative debt %s", staker, record.Debt)
		}
		sum = sum.Add(record.Principal)
	}

	if !sum.Equal(state.TotalStaked) {
		return fmt.Errorf("total staked %s != sum of principals %s", state.TotalStaked, sum)
	}
	if state.RatePerStake.LT(ledger.Wad()) {
		return fmt.Errorf("rate accumulator %s fell below its starting value", state.RatePerStake)
	}
	return nil
}
