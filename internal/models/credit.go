package models

import (
	"time"
)

// ProviderSlip2Go is the provider tag stored on every credit record
// produced by this pipeline.
const ProviderSlip2Go = "slip2go"

// CreditRecord is the persisted fact of one successful credit. One row per
// transaction reference, append-only; the unique constraint on
// TransactionRef is the durable idempotency guard.
type CreditRecord struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Provider       string    `json:"provider"`
	Amount         Decimal   `json:"amount"`
	TransactionRef string    `json:"transactionRef"`
	SenderName     string    `json:"senderName"`
	ReceiverName   string    `json:"receiverName"`
	ReferenceID    string    `json:"referenceId"`
	SlipTimestamp  string    `json:"slipTimestamp"`
	CreatedAt      time.Time `json:"createdAt"`
}

type UserBalance struct {
	UserID    string    `json:"userId"`
	Balance   Decimal   `json:"balance"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProcessSlipRequest is one slip submission as it arrives from the
// delivery layer.
type ProcessSlipRequest struct {
	UserID   string
	Filename string
	Image    []byte
}

// ListCreditRecordsRequest drives the credit-history listing query.
type ListCreditRecordsRequest struct {
	UserID string
	Limit  int
	Offset int
}

// TopupNotification is published after a successful credit, keyed by the
// transaction reference. Delivery is fire-and-forget: a publish failure
// never rolls back the credit.
type TopupNotification struct {
	UserID         string    `json:"userId"`
	Amount         Decimal   `json:"amount"`
	TransactionRef string    `json:"transactionRef"`
	SenderName     string    `json:"senderName"`
	CreditedAt     time.Time `json:"creditedAt"`
}

// CreditFaultAlert is the operator alert for a claimed-but-uncredited
// transfer. It carries everything needed for manual reconciliation.
type CreditFaultAlert struct {
	UserID         string    `json:"userId"`
	TransactionRef string    `json:"transactionRef"`
	Amount         *Decimal  `json:"amount"`
	Detail         string    `json:"detail"`
	OccurredAt     time.Time `json:"occurredAt"`
}
