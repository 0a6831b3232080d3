package ports

import (
	"context"
	"time"

	"vcard-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRepository defines persistence for ledger entries. The ledger is
// insert-only: there is deliberately no update method.
type LedgerRepository interface {
	Insert(ctx context.Context, entry *domain.LedgerEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error)
	// GetLatestPayment returns the most recent payment entry for an order
	// reference, or nil if none was recorded locally.
	GetLatestPayment(ctx context.Context, orderRef string) (*domain.LedgerEntry, error)
	// SumRefunded returns the cumulative refunded amount for an order.
	SumRefunded(ctx context.Context, orderRef string) (decimal.Decimal, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

// PendingRefundRepository defines persistence for customer refund asks.
type PendingRefundRepository interface {
	Create(ctx context.Context, req *domain.PendingRefundRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingRefundRequest, error)
	List(ctx context.Context, params ListPendingParams) ([]PendingRefundView, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RefundRequestStatus, resolvedAt time.Time) error
}

// ListPendingParams holds filter + pagination for the admin refund queue.
type ListPendingParams struct {
	Status domain.RefundRequestStatus
	Limit  int
	Offset int
}

// PendingRefundView is a refund request joined with display-only fields:
// the requester's name and the originating order's summary.
type PendingRefundView struct {
	domain.PendingRefundRequest
	RequesterName string  `json:"requester_name"`
	OrderSummary  *string `json:"order_summary,omitempty"`
}

// ProfileRepository reads the identity provider's user records. This
// service never writes profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	// GetRole returns the user's role, or "" when no profile exists.
	GetRole(ctx context.Context, id uuid.UUID) (string, error)
}
