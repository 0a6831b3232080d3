package postgres

import (
	"context"
	"errors"
	"fmt"

	"vcard-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements ports.LedgerRepository. The table is
// insert-only; there is no UPDATE statement in this file on purpose.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `id, processor_txn_id, kind, order_reference, amount, status, user_id, card_last_four, originating_payment_id, created_at`

// Insert writes a new ledger entry.
func (r *LedgerRepo) Insert(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.ProcessorTxnID, e.Kind, e.OrderReference,
		e.Amount, e.Status, e.UserID, e.CardLastFour,
		e.OriginatingPaymentID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID fetches a ledger entry by UUID.
func (r *LedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`
	return r.scanEntry(r.pool.QueryRow(ctx, query, id))
}

// GetLatestPayment fetches the most recent payment entry for an order
// reference, or nil if none exists.
func (r *LedgerRepo) GetLatestPayment(ctx context.Context, orderRef string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE order_reference = $1 AND kind = 'payment'
		ORDER BY created_at DESC LIMIT 1`
	return r.scanEntry(r.pool.QueryRow(ctx, query, orderRef))
}

// SumRefunded returns the cumulative refunded amount for an order.
func (r *LedgerRepo) SumRefunded(ctx context.Context, orderRef string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries
		WHERE order_reference = $1 AND kind = 'refund'`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, orderRef).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum refunded: %w", err)
	}
	return sum, nil
}

// ListByUser fetches a user's ledger entries, newest first.
func (r *LedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(
			&e.ID, &e.ProcessorTxnID, &e.Kind, &e.OrderReference,
			&e.Amount, &e.Status, &e.UserID, &e.CardLastFour,
			&e.OriginatingPaymentID, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}

// scanEntry is a helper to scan a single row into a LedgerEntry.
func (r *LedgerRepo) scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	e := &domain.LedgerEntry{}
	err := row.Scan(
		&e.ID, &e.ProcessorTxnID, &e.Kind, &e.OrderReference,
		&e.Amount, &e.Status, &e.UserID, &e.CardLastFour,
		&e.OriginatingPaymentID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}
	return e, nil
}
