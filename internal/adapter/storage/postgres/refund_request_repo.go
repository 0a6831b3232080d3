package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PendingRefundRepo implements ports.PendingRefundRepository.
type PendingRefundRepo struct {
	pool Pool
}

// NewPendingRefundRepo creates a new PendingRefundRepo.
func NewPendingRefundRepo(pool Pool) *PendingRefundRepo {
	return &PendingRefundRepo{pool: pool}
}

// Create inserts a new refund request.
func (r *PendingRefundRepo) Create(ctx context.Context, req *domain.PendingRefundRequest) error {
	query := `INSERT INTO refund_requests (id, order_reference, amount, reason, status, user_id, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.OrderReference, req.Amount, req.Reason,
		req.Status, req.UserID, req.CreatedAt, req.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refund request: %w", err)
	}
	return nil
}

// GetByID fetches a refund request by UUID, or nil if none exists.
func (r *PendingRefundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingRefundRequest, error) {
	query := `SELECT id, order_reference, amount, reason, status, user_id, created_at, resolved_at
		FROM refund_requests WHERE id = $1`

	req := &domain.PendingRefundRequest{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.OrderReference, &req.Amount, &req.Reason,
		&req.Status, &req.UserID, &req.CreatedAt, &req.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan refund request: %w", err)
	}
	return req, nil
}

// List fetches refund requests with the requester's display name and the
// originating order's summary joined in, newest first. Requests survive
// profile or order deletion, hence the left joins.
func (r *PendingRefundRepo) List(ctx context.Context, params ports.ListPendingParams) ([]ports.PendingRefundView, int64, error) {
	countQuery := `SELECT COUNT(*) FROM refund_requests WHERE status = $1`
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, params.Status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count refund requests: %w", err)
	}

	dataQuery := `SELECT rr.id, rr.order_reference, rr.amount, rr.reason, rr.status, rr.user_id, rr.created_at, rr.resolved_at,
			COALESCE(p.display_name, ''), o.summary
		FROM refund_requests rr
		LEFT JOIN profiles p ON p.id = rr.user_id
		LEFT JOIN orders o ON o.reference = rr.order_reference
		WHERE rr.status = $1
		ORDER BY rr.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, dataQuery, params.Status, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list refund requests: %w", err)
	}
	defer rows.Close()

	var views []ports.PendingRefundView
	for rows.Next() {
		var v ports.PendingRefundView
		err := rows.Scan(
			&v.ID, &v.OrderReference, &v.Amount, &v.Reason,
			&v.Status, &v.UserID, &v.CreatedAt, &v.ResolvedAt,
			&v.RequesterName, &v.OrderSummary,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan refund request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate refund request rows: %w", err)
	}
	return views, total, nil
}

// UpdateStatus resolves a refund request.
func (r *PendingRefundRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RefundRequestStatus, resolvedAt time.Time) error {
	query := `UPDATE refund_requests SET status = $1, resolved_at = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, resolvedAt, id)
	if err != nil {
		return fmt.Errorf("update refund request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund request not found: %s", id)
	}
	return nil
}
