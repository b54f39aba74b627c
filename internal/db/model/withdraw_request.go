package model

type WithdrawRequestDocument struct {
	ID          uint64 `bson:"_id"` // Primary key, monotonically assigned by the ledger
	Owner       string `bson:"owner"`
	Amount      string `bson:"amount"`
	RequestTime int64  `bson:"request_time"`
}

func NewWithdrawRequestDocument(id uint64, owner, amount string, requestTime int64) *WithdrawRequestDocument {
	return &WithdrawRequestDocument{
		ID:          id,
		Owner:       owner,
		Amount:      amount,
		RequestTime: requestTime,
	}
}
