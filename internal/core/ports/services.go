package ports

import (
	"context"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/processor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessorGateway is the seam over the external payment processor client.
type ProcessorGateway interface {
	Charge(ctx context.Context, req *processor.ChargeRequest) (*processor.Result, error)
	Refund(ctx context.Context, req *processor.RefundRequest) (*processor.Result, error)
}

// TokenVerifier validates a bearer credential and yields the caller
// identity. Token issuance belongs to the external identity provider.
type TokenVerifier interface {
	Verify(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed bearer token claims.
type TokenClaims struct {
	UserID uuid.UUID
}

// TransactionCache is a short-lived read-through cache for a user's
// transaction history. A nil, nil Get is a miss.
type TransactionCache interface {
	Get(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
	Set(ctx context.Context, userID uuid.UUID, limit int, entries []domain.LedgerEntry, ttl time.Duration) error
}

// OrderLocker serializes refund execution per order reference so two
// concurrent refunds for the same order cannot both reach the processor.
type OrderLocker interface {
	// Acquire returns true if the caller now holds the lock.
	Acquire(ctx context.Context, orderRef string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, orderRef string) error
}

// --- Service Ports (Business Logic) ---

// TransactionService is the money-moving entry point: validate, call the
// processor, record the outcome, reconcile partial failure.
type TransactionService interface {
	ChargeCard(ctx context.Context, input ChargeCardInput) (*ChargeOutcome, error)
	Refund(ctx context.Context, input RefundInput) (*RefundOutcome, error)
}

// ChargeCardInput holds raw charge input from an authenticated caller.
type ChargeCardInput struct {
	UserID         uuid.UUID
	CardNumber     string
	CVV            string
	Amount         decimal.Decimal
	OrderReference string
}

// ChargeOutcome is the result of a charge that succeeded at the
// processor. RecordingFailed marks the partial-success condition: money
// moved but the local ledger write failed; Entry is nil in that case.
type ChargeOutcome struct {
	ProcessorTxnID  int64
	Status          string
	Entry           *domain.LedgerEntry
	RecordingFailed bool
}

// RefundInput holds raw refund input from an admin caller.
type RefundInput struct {
	AdminID        uuid.UUID
	OrderReference string
	Amount         decimal.Decimal
	Reason         string
	// RequestID links the refund to the customer's pending ask; the
	// request is marked completed when the refund succeeds.
	RequestID *uuid.UUID
}

// RefundOutcome mirrors ChargeOutcome for refunds, plus the post-refund
// balances when the processor reported them (nil = unknown).
type RefundOutcome struct {
	ProcessorTxnID   int64
	Status           string
	NewWalletBalance *decimal.Decimal
	NewCardBalance   *decimal.Decimal
	Entry            *domain.LedgerEntry
	RecordingFailed  bool
}

// QueryService is the read path plus pending-refund-request lifecycle.
type QueryService interface {
	ListPendingRefundRequests(ctx context.Context, params ListPendingParams) ([]PendingRefundView, int64, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID, limit int, forceRefresh bool) ([]domain.LedgerEntry, error)
	CreateRefundRequest(ctx context.Context, input CreateRefundRequestInput) (*domain.PendingRefundRequest, error)
	RejectRefundRequest(ctx context.Context, id uuid.UUID) (*domain.PendingRefundRequest, error)
}

// CreateRefundRequestInput holds a customer's refund ask.
type CreateRefundRequestInput struct {
	UserID         uuid.UUID
	OrderReference string
	Amount         decimal.Decimal
	Reason         string
}
