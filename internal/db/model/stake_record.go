package model

// StakeRecordDocument is the persisted view of one staker's position.
// Amounts are stored as decimal strings since they can exceed int64.
type StakeRecordDocument struct {
	Staker       string `bson:"_id"` // Primary key
	Principal    string `bson:"principal"`
	ClaimedValue string `bson:"claimed_value"`
	Debt         string `bson:"debt"`
}

func NewStakeRecordDocument(staker, principal, claimedValue, debt string) *StakeRecordDocument {
	return &StakeRecordDocument{
		Staker:       staker,
		Principal:    principal,
		ClaimedValue: claimedValue,
		Debt:         debt,
	}
}
