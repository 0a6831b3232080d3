package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundRequestStatus is the lifecycle state of a customer's refund ask.
type RefundRequestStatus string

const (
	RefundRequestPending   RefundRequestStatus = "pending"
	RefundRequestCompleted RefundRequestStatus = "completed"
	RefundRequestRejected  RefundRequestStatus = "rejected"
)

// PendingRefundRequest is a customer-initiated ask for money back. It
// records intent; the ledger records executed fact. An admin either drives
// it through the refund pipeline (-> completed) or declines it without
// calling the processor (-> rejected).
type PendingRefundRequest struct {
	ID             uuid.UUID           `json:"id"`
	OrderReference string              `json:"order_reference"`
	Amount         decimal.Decimal     `json:"amount"`
	Reason         string              `json:"reason"`
	Status         RefundRequestStatus `json:"status"`
	UserID         uuid.UUID           `json:"user_id"`
	CreatedAt      time.Time           `json:"created_at"`
	ResolvedAt     *time.Time          `json:"resolved_at,omitempty"`
}

// IsResolved returns true once an admin has acted on the request.
func (r *PendingRefundRequest) IsResolved() bool {
	return r.Status != RefundRequestPending
}

// Profile is the slice of the identity provider's user record this service
// reads: the role gate and display names for the admin refund queue.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

// RoleAdmin is the elevated role required for refund operations.
const RoleAdmin = "admin"

// IsAdmin reports whether the profile carries the elevated role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
