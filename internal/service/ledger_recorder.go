package service

import (
	"context"
	"fmt"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"
	"vcard-payments/internal/processor"
	"vcard-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// ledgerRecordFailures counts the partial-success condition: the
// processor confirmed the movement but the local insert failed. Operator
// alerting hangs off this counter.
var ledgerRecordFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "payments_ledger_record_failures_total",
	Help: "Processor-confirmed transactions whose local ledger insert failed",
}, []string{"kind"})

// LedgerRecorder persists processor results as immutable ledger entries.
// Each write is attempted exactly once; a failure is surfaced, never
// silently retried, because the money already moved at the processor.
type LedgerRecorder struct {
	repo ports.LedgerRepository
	log  zerolog.Logger
}

// NewLedgerRecorder creates a LedgerRecorder.
func NewLedgerRecorder(repo ports.LedgerRepository, log zerolog.Logger) *LedgerRecorder {
	return &LedgerRecorder{repo: repo, log: log}
}

// RecordPayment writes the ledger entry for a processor-confirmed charge.
// Only the last four card digits are retained.
func (r *LedgerRecorder) RecordPayment(ctx context.Context, result *processor.Result, req *processor.ChargeRequest, userID uuid.UUID) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		ID:             uuid.New(),
		ProcessorTxnID: result.TransactionID,
		Kind:           domain.LedgerKindPayment,
		OrderReference: req.OrderReference,
		Amount:         req.Amount,
		Status:         result.Status,
		UserID:         userID,
		CardLastFour:   req.LastFour(),
		CreatedAt:      time.Now().UTC(),
	}

	if err := r.repo.Insert(ctx, entry); err != nil {
		ledgerRecordFailures.WithLabelValues(string(domain.LedgerKindPayment)).Inc()
		return nil, apperror.ErrLedgerWrite(fmt.Errorf("insert payment entry: %w", err))
	}

	r.log.Info().
		Str("entry_id", entry.ID.String()).
		Int64("processor_txn_id", entry.ProcessorTxnID).
		Str("order_ref", entry.OrderReference).
		Str("card_last4", entry.CardLastFour).
		Msg("payment recorded")

	return entry, nil
}

// RecordRefund writes the ledger entry for a processor-confirmed refund,
// linking it to the most recent payment entry for the same order
// reference. A missing originating payment is a warning, not a failure:
// that record may itself have failed to write.
func (r *LedgerRecorder) RecordRefund(ctx context.Context, result *processor.Result, req *processor.RefundRequest, fallbackUserID uuid.UUID) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		ID:             uuid.New(),
		ProcessorTxnID: result.TransactionID,
		Kind:           domain.LedgerKindRefund,
		OrderReference: req.OrderReference,
		Amount:         req.Amount,
		Status:         result.Status,
		UserID:         fallbackUserID,
		CreatedAt:      time.Now().UTC(),
	}

	orig, err := r.repo.GetLatestPayment(ctx, req.OrderReference)
	if err != nil {
		r.log.Warn().Err(err).Str("order_ref", req.OrderReference).Msg("originating payment lookup failed")
	}
	if orig != nil {
		entry.OriginatingPaymentID = &orig.ID
		entry.UserID = orig.UserID
		entry.CardLastFour = orig.CardLastFour
	} else {
		r.log.Warn().Str("order_ref", req.OrderReference).Msg("refund without locally recorded originating payment")
	}

	if err := r.repo.Insert(ctx, entry); err != nil {
		ledgerRecordFailures.WithLabelValues(string(domain.LedgerKindRefund)).Inc()
		return nil, apperror.ErrLedgerWrite(fmt.Errorf("insert refund entry: %w", err))
	}

	r.log.Info().
		Str("entry_id", entry.ID.String()).
		Int64("processor_txn_id", entry.ProcessorTxnID).
		Str("order_ref", entry.OrderReference).
		Msg("refund recorded")

	return entry, nil
}
