package pkg

import (
	"fmt"
)

const (
	minAddressLen = 3
	maxAddressLen = 90
)

// ValidateAddress checks the ledger account identifier format: printable
// ASCII without whitespace, bounded length. Custody backends may impose
// stricter formats behind their own adapters.
func ValidateAddress(address string) error {
	if len(address) < minAddressLen || len(address) > maxAddressLen {
		return fmt.Errorf("address length must be between %d and %d characters", minAddressLen, maxAddressLen)
	}
	for _, r := range address {
		if r <= ' ' || r > '~' {
			return fmt.Errorf("address contains invalid character %q", r)
		}
	}
	return nil
}
