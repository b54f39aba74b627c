package types

import sdkmath "cosmossdk.io/math"

type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

const (
	EventStakeRecorded     EventTypes = "ledger.v1.EventStakeRecorded"
	EventRateAdvanced      EventTypes = "ledger.v1.EventRateAdvanced"
	EventRewardsPaid       EventTypes = "ledger.v1.EventRewardsPaid"
	EventDebtChanged       EventTypes = "ledger.v1.EventDebtChanged"
	EventWithdrawRequested EventTypes = "ledger.v1.EventWithdrawRequested"
	EventWithdrawFinalized EventTypes = "ledger.v1.EventWithdrawFinalized"
	EventTokensDonated     EventTypes = "ledger.v1.EventTokensDonated"
	EventMinStakeChanged   EventTypes = "ledger.v1.EventMinStakeChanged"
	EventRateParamChanged  EventTypes = "ledger.v1.EventRateParamChanged"
	EventExcessWithdrawn   EventTypes = "ledger.v1.EventExcessWithdrawn"
)

// Event is a single on-ledger observation. At is the unix timestamp the
// emitting operation sampled as "now"; Payload is one of the *Payload
// structs below.
type Event struct {
	Type    EventTypes `json:"type"`
	At      int64      `json:"at"`
	Payload any        `json:"payload"`
}

func NewEvent(eventType EventTypes, at int64, payload any) Event {
	return Event{
		Type:    eventType,
		At:      at,
		Payload: payload,
	}
}

type StakeRecordedPayload struct {
	Staker    string      `json:"staker"`
	Amount    sdkmath.Int `json:"amount"`
	Principal sdkmath.Int `json:"principal"`
}

type RateAdvancedPayload struct {
	OldRate sdkmath.Int `json:"old_rate"`
	NewRate sdkmath.Int `json:"new_rate"`
}

type RewardsPaidPayload struct {
	Recipient string      `json:"recipient"`
	Amount    sdkmath.Int `json:"amount"`
}

type DebtChangedPayload struct {
	Staker  string      `json:"staker"`
	OldDebt sdkmath.Int `json:"old_debt"`
	NewDebt sdkmath.Int `json:"new_debt"`
}

type WithdrawRequestedPayload struct {
	ID     uint64      `json:"id"`
	Owner  string      `json:"owner"`
	Amount sdkmath.Int `json:"amount"`
}

type WithdrawFinalizedPayload struct {
	ID     uint64      `json:"id"`
	Owner  string      `json:"owner"`
	Amount sdkmath.Int `json:"amount"`
}

type TokensDonatedPayload struct {
	Donor  string      `json:"donor"`
	Amount sdkmath.Int `json:"amount"`
}

type MinStakeChangedPayload struct {
	OldMinStake sdkmath.Int `json:"old_min_stake"`
	NewMinStake sdkmath.Int `json:"new_min_stake"`
}

type RateParamChangedPayload struct {
	OldRateBps uint32 `json:"old_rate_bps"`
	NewRateBps uint32 `json:"new_rate_bps"`
}

type ExcessWithdrawnPayload struct {
	Recipient string      `json:"recipient"`
	Amount    sdkmath.Int `json:"amount"`
}
