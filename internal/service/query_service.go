package service

import (
	"context"
	"fmt"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"
	"vcard-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultTxnLimit     = 20
	maxTxnLimit         = 100
	defaultPendingLimit = 50
	maxPendingLimit     = 100
)

// QueryServiceImpl implements ports.QueryService: the read path over the
// ledger and the pending-refund-request lifecycle.
type QueryServiceImpl struct {
	ledgerRepo  ports.LedgerRepository
	pendingRepo ports.PendingRefundRepository
	txnCache    ports.TransactionCache
	cacheTTL    time.Duration
	log         zerolog.Logger
}

// NewQueryService creates a QueryServiceImpl.
func NewQueryService(
	ledgerRepo ports.LedgerRepository,
	pendingRepo ports.PendingRefundRepository,
	txnCache ports.TransactionCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *QueryServiceImpl {
	return &QueryServiceImpl{
		ledgerRepo:  ledgerRepo,
		pendingRepo: pendingRepo,
		txnCache:    txnCache,
		cacheTTL:    cacheTTL,
		log:         log,
	}
}

// ListPendingRefundRequests returns the admin refund queue, newest first.
func (s *QueryServiceImpl) ListPendingRefundRequests(ctx context.Context, params ports.ListPendingParams) ([]ports.PendingRefundView, int64, error) {
	if params.Status == "" {
		params.Status = domain.RefundRequestPending
	}
	if params.Limit <= 0 || params.Limit > maxPendingLimit {
		params.Limit = defaultPendingLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	items, total, err := s.pendingRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list refund requests: %w", err))
	}
	return items, total, nil
}

// ListUserTransactions returns the caller's own ledger entries, newest
// first, through a short-lived cache. The cache is not invalidated by
// concurrent writes; callers wanting fresh data after their own write
// pass forceRefresh.
func (s *QueryServiceImpl) ListUserTransactions(ctx context.Context, userID uuid.UUID, limit int, forceRefresh bool) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultTxnLimit
	}
	if limit > maxTxnLimit {
		limit = maxTxnLimit
	}

	if !forceRefresh {
		cached, err := s.txnCache.Get(ctx, userID, limit)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("transaction cache read failed, falling through")
		}
		if cached != nil {
			return cached, nil
		}
	}

	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list user transactions: %w", err))
	}

	if err := s.txnCache.Set(ctx, userID, limit, entries, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("transaction cache write failed")
	}

	return entries, nil
}

// CreateRefundRequest records a customer's refund ask. It represents
// intent only; no processor call happens here.
func (s *QueryServiceImpl) CreateRefundRequest(ctx context.Context, input ports.CreateRefundRequestInput) (*domain.PendingRefundRequest, error) {
	var bad []string
	if !input.Amount.IsPositive() {
		bad = append(bad, "amount")
	}
	if input.OrderReference == "" {
		bad = append(bad, "order_reference")
	}
	if len(bad) > 0 {
		return nil, apperror.ErrInvalidFields(bad...)
	}

	req := &domain.PendingRefundRequest{
		ID:             uuid.New(),
		OrderReference: input.OrderReference,
		Amount:         input.Amount.Round(5),
		Reason:         input.Reason,
		Status:         domain.RefundRequestPending,
		UserID:         input.UserID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.pendingRepo.Create(ctx, req); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create refund request: %w", err))
	}

	s.log.Info().
		Str("request_id", req.ID.String()).
		Str("order_ref", req.OrderReference).
		Msg("refund request created")

	return req, nil
}

// RejectRefundRequest declines a pending ask without calling the
// processor.
func (s *QueryServiceImpl) RejectRefundRequest(ctx context.Context, id uuid.UUID) (*domain.PendingRefundRequest, error) {
	req, err := s.pendingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get refund request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("refund request")
	}
	if req.IsResolved() {
		return nil, apperror.ErrRefundRequestResolved()
	}

	now := time.Now().UTC()
	if err := s.pendingRepo.UpdateStatus(ctx, id, domain.RefundRequestRejected, now); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reject refund request: %w", err))
	}

	req.Status = domain.RefundRequestRejected
	req.ResolvedAt = &now
	return req, nil
}
