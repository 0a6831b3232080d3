package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"
	"vcard-payments/internal/processor"
	"vcard-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

// refundLockTTL bounds how long a crashed refund can hold its order lock.
const refundLockTTL = 60 * time.Second

// TransactionServiceImpl implements ports.TransactionService. One call
// runs the whole pipeline for a single request: validate, call the
// processor, record the result, reconcile partial failure. Nothing is
// retried automatically — a repeated charge is a second real charge.
type TransactionServiceImpl struct {
	gateway     ports.ProcessorGateway
	recorder    *LedgerRecorder
	ledgerRepo  ports.LedgerRepository
	pendingRepo ports.PendingRefundRepository
	orderLock   ports.OrderLocker
	log         zerolog.Logger
}

// NewTransactionService creates a TransactionServiceImpl.
func NewTransactionService(
	gateway ports.ProcessorGateway,
	recorder *LedgerRecorder,
	ledgerRepo ports.LedgerRepository,
	pendingRepo ports.PendingRefundRepository,
	orderLock ports.OrderLocker,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		gateway:     gateway,
		recorder:    recorder,
		ledgerRepo:  ledgerRepo,
		pendingRepo: pendingRepo,
		orderLock:   orderLock,
		log:         log,
	}
}

// ChargeCard validates and executes a card charge. A processor success
// followed by a ledger write failure still returns a successful outcome
// with RecordingFailed set: the money moved and the payer must not be
// told otherwise.
func (s *TransactionServiceImpl) ChargeCard(ctx context.Context, input ports.ChargeCardInput) (*ports.ChargeOutcome, error) {
	req, err := processor.BuildChargeRequest(input.CardNumber, input.CVV, input.Amount, input.OrderReference)
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.Charge(ctx, req)
	if err != nil {
		return nil, err
	}

	entry, err := s.recorder.RecordPayment(ctx, result, req, input.UserID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "LEDGER_001" {
			s.log.Error().Err(err).
				Int64("processor_txn_id", result.TransactionID).
				Str("order_ref", req.OrderReference).
				Msg("charge succeeded at processor but local recording failed")
			return &ports.ChargeOutcome{
				ProcessorTxnID:  result.TransactionID,
				Status:          result.Status,
				RecordingFailed: true,
			}, nil
		}
		return nil, err
	}

	return &ports.ChargeOutcome{
		ProcessorTxnID: result.TransactionID,
		Status:         result.Status,
		Entry:          entry,
	}, nil
}

// Refund validates and executes a refund under a per-order lock, so two
// concurrent refunds for the same order cannot both reach the processor.
// Cumulative refunds may not exceed the locally recorded payment; when no
// payment entry exists locally the check is skipped and the processor
// remains the source of truth.
func (s *TransactionServiceImpl) Refund(ctx context.Context, input ports.RefundInput) (*ports.RefundOutcome, error) {
	req, err := processor.BuildRefundRequest(input.OrderReference, input.Amount, input.Reason)
	if err != nil {
		return nil, err
	}

	acquired, err := s.orderLock.Acquire(ctx, req.OrderReference, refundLockTTL)
	if err != nil {
		// Degraded mode: losing the lock store should not halt refunds.
		s.log.Warn().Err(err).Str("order_ref", req.OrderReference).Msg("order lock unavailable, proceeding unserialized")
	} else if !acquired {
		return nil, apperror.ErrRefundInProgress()
	} else {
		defer func() {
			if relErr := s.orderLock.Release(ctx, req.OrderReference); relErr != nil {
				s.log.Warn().Err(relErr).Str("order_ref", req.OrderReference).Msg("order lock release failed")
			}
		}()
	}

	if err := s.checkOverRefund(ctx, req); err != nil {
		return nil, err
	}

	result, err := s.gateway.Refund(ctx, req)
	if err != nil {
		return nil, err
	}

	outcome := &ports.RefundOutcome{
		ProcessorTxnID:   result.TransactionID,
		Status:           result.Status,
		NewWalletBalance: result.NewWalletBalance,
		NewCardBalance:   result.NewCardBalance,
	}

	entry, err := s.recorder.RecordRefund(ctx, result, req, input.AdminID)
	if err != nil {
		s.log.Error().Err(err).
			Int64("processor_txn_id", result.TransactionID).
			Str("order_ref", req.OrderReference).
			Msg("refund succeeded at processor but local recording failed")
		outcome.RecordingFailed = true
	} else {
		outcome.Entry = entry
	}

	// Mark the customer's pending ask completed. Best-effort: the refund
	// itself already happened.
	if input.RequestID != nil {
		if updErr := s.pendingRepo.UpdateStatus(ctx, *input.RequestID, domain.RefundRequestCompleted, time.Now().UTC()); updErr != nil {
			s.log.Warn().Err(updErr).Str("request_id", input.RequestID.String()).Msg("marking refund request completed failed")
		}
	}

	return outcome, nil
}

// checkOverRefund enforces the cumulative-refund cap against the locally
// recorded originating payment.
func (s *TransactionServiceImpl) checkOverRefund(ctx context.Context, req *processor.RefundRequest) error {
	orig, err := s.ledgerRepo.GetLatestPayment(ctx, req.OrderReference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("originating payment lookup: %w", err))
	}
	if orig == nil {
		return nil
	}

	refunded, err := s.ledgerRepo.SumRefunded(ctx, req.OrderReference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("refund sum lookup: %w", err))
	}
	if refunded.Add(req.Amount).GreaterThan(orig.Amount) {
		return apperror.ErrRefundExceedsPayment()
	}
	return nil
}
