package model

// LedgerStateID is the fixed key of the singleton ledger state document.
const LedgerStateID = "ledger"

type LedgerStateDocument struct {
	ID             string `bson:"_id"`
	RatePerStake   string `bson:"rate_per_stake"`
	LastUpdateTime int64  `bson:"last_update_time"`
	TotalStaked    string `bson:"total_staked"`
	AnnualRateBps  uint32 `bson:"annual_rate_bps"`
	MinStake       string `bson:"min_stake"`
	NextWithdrawID uint64 `bson:"next_withdraw_id"`
}
