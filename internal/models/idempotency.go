package models

import (
	"fmt"
	"time"
)

const (
	// TTLCreditClaim bounds the redis claim. The credit table's unique
	// constraint stays authoritative after expiry.
	TTLCreditClaim = 1 * 24 * time.Hour // 1 day

	creditClaimKeyFormat = "locking-topup-%s"
)

// CreditClaimKey is the redis key reserved for one transaction reference.
// The claim must be taken before any balance mutation and at most one
// claimant can win it.
func CreditClaimKey(transactionRef string) string {
	return fmt.Sprintf(creditClaimKeyFormat, transactionRef)
}
