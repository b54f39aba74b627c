package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// RandomAlphaNum generates a random alphanumeric string of the given length
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomAddress generates a plausible ledger account identifier
func RandomAddress() (string, error) {
	suffix, err := RandomAlphaNum(12)
	if err != nil {
		return "", err
	}
	return "acct" + suffix, nil
}

// RandomAmount generates a random amount in [min, max]
func RandomAmount(min, max int64) (sdkmath.Int, error) {
	if max < min {
		return sdkmath.Int{}, fmt.Errorf("max %d is below min %d", max, min)
	}
	delta, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return sdkmath.Int{}, err
	}
	return sdkmath.NewInt(min + delta.Int64()), nil
}
