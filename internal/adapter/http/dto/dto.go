package dto

import (
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ChargeRequest is the request body for charging a virtual card.
type ChargeRequest struct {
	CardNumber     string          `json:"card_number" binding:"required,card_number"`
	CVV            string          `json:"cvv" binding:"required,cvv"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	OrderReference string          `json:"order_reference" binding:"required,max=100"`
}

// RefundExecuteRequest is the request body for executing a refund.
type RefundExecuteRequest struct {
	OrderReference string          `json:"order_reference" binding:"required,max=100"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Reason         string          `json:"reason" binding:"max=500"`
	// RequestID optionally links the refund to a pending customer ask.
	RequestID *string `json:"request_id,omitempty" binding:"omitempty,uuid"`
}

// RefundRequestCreate is the request body for a customer's refund ask.
type RefundRequestCreate struct {
	OrderReference string          `json:"order_reference" binding:"required,max=100"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Reason         string          `json:"reason" binding:"required,max=500"`
}

// TransactionResponse is the response shape of one ledger entry. Amounts
// are decimal strings, never floats.
type TransactionResponse struct {
	ID                   string  `json:"id"`
	ProcessorTxnID       int64   `json:"processor_transaction_id"`
	Kind                 string  `json:"kind"`
	OrderReference       string  `json:"order_reference"`
	Amount               string  `json:"amount"`
	Status               string  `json:"status"`
	CardLastFour         string  `json:"card_last_four,omitempty"`
	OriginatingPaymentID *string `json:"originating_payment_id,omitempty"`
	CreatedAt            string  `json:"created_at"`
}

// ChargeResponse is the response body for a processed charge.
// RecordingFailed marks a charge that succeeded at the processor but
// could not be written to the local ledger.
type ChargeResponse struct {
	TransactionID   int64                `json:"transaction_id"`
	Status          string               `json:"status"`
	RecordingFailed bool                 `json:"recording_failed,omitempty"`
	Ledger          *TransactionResponse `json:"ledger,omitempty"`
}

// RefundResponse is the response body for an executed refund.
type RefundResponse struct {
	TransactionID    int64                `json:"transaction_id"`
	Status           string               `json:"status"`
	NewWalletBalance *string              `json:"new_wallet_balance,omitempty"`
	NewCardBalance   *string              `json:"new_card_balance,omitempty"`
	RecordingFailed  bool                 `json:"recording_failed,omitempty"`
	Ledger           *TransactionResponse `json:"ledger,omitempty"`
}

// RefundRequestResponse is the response shape of one refund request.
type RefundRequestResponse struct {
	ID             string  `json:"id"`
	OrderReference string  `json:"order_reference"`
	Amount         string  `json:"amount"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	UserID         string  `json:"user_id"`
	CreatedAt      string  `json:"created_at"`
	ResolvedAt     *string `json:"resolved_at,omitempty"`
	RequesterName  string  `json:"requester_name,omitempty"`
	OrderSummary   *string `json:"order_summary,omitempty"`
}

// RefundRequestListResponse wraps the admin refund queue.
type RefundRequestListResponse struct {
	Items  []RefundRequestResponse `json:"items"`
	Total  int64                   `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

// TransactionListResponse wraps a user's transaction history.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}

// FromLedgerEntry converts a domain ledger entry to its response shape.
func FromLedgerEntry(e *domain.LedgerEntry) TransactionResponse {
	resp := TransactionResponse{
		ID:             e.ID.String(),
		ProcessorTxnID: e.ProcessorTxnID,
		Kind:           string(e.Kind),
		OrderReference: e.OrderReference,
		Amount:         e.Amount.StringFixed(5),
		Status:         e.Status,
		CardLastFour:   e.CardLastFour,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.OriginatingPaymentID != nil {
		id := e.OriginatingPaymentID.String()
		resp.OriginatingPaymentID = &id
	}
	return resp
}

// FromRefundRequest converts a domain refund request to its response
// shape.
func FromRefundRequest(r *domain.PendingRefundRequest) RefundRequestResponse {
	resp := RefundRequestResponse{
		ID:             r.ID.String(),
		OrderReference: r.OrderReference,
		Amount:         r.Amount.StringFixed(5),
		Reason:         r.Reason,
		Status:         string(r.Status),
		UserID:         r.UserID.String(),
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.ResolvedAt != nil {
		ts := r.ResolvedAt.UTC().Format(time.RFC3339)
		resp.ResolvedAt = &ts
	}
	return resp
}

// FromRefundView converts a joined refund request view to its response
// shape.
func FromRefundView(v *ports.PendingRefundView) RefundRequestResponse {
	resp := FromRefundRequest(&v.PendingRefundRequest)
	resp.RequesterName = v.RequesterName
	resp.OrderSummary = v.OrderSummary
	return resp
}
