package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerKind represents the kind of money movement recorded in the ledger.
type LedgerKind string

const (
	LedgerKindPayment LedgerKind = "payment"
	LedgerKindRefund  LedgerKind = "refund"
)

// Processor statuses. The processor is the single source of truth: any
// string it returns is stored as-is, these are just the well-known values.
const (
	StatusApproved = "approved"
	StatusFrozen   = "frozen"
	StatusRejected = "rejected"
)

// LedgerEntry is the locally stored, immutable record of one
// processor-confirmed payment or refund. Entries are created exactly once
// per successful processor call and never updated; a later status change
// at the processor would require a new entry.
type LedgerEntry struct {
	ID                   uuid.UUID       `json:"id"`
	ProcessorTxnID       int64           `json:"processor_transaction_id"`
	Kind                 LedgerKind      `json:"kind"`
	OrderReference       string          `json:"order_reference"`
	Amount               decimal.Decimal `json:"amount"`
	Status               string          `json:"status"`
	UserID               uuid.UUID       `json:"user_id"`
	CardLastFour         string          `json:"card_last_four,omitempty"`
	OriginatingPaymentID *uuid.UUID      `json:"originating_payment_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// IsRefund reports whether this entry records a refund.
func (e *LedgerEntry) IsRefund() bool {
	return e.Kind == LedgerKindRefund
}
