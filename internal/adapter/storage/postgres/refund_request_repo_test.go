package postgres

import (
	"context"
	"testing"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest() *domain.PendingRefundRequest {
	return &domain.PendingRefundRequest{
		ID:             uuid.New(),
		OrderReference: "order-1",
		Amount:         decimal.RequireFromString("25.00000"),
		Reason:         "cold food",
		Status:         domain.RefundRequestPending,
		UserID:         uuid.New(),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestPendingRefundRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	req := newTestRequest()

	mock.ExpectExec("INSERT INTO refund_requests").
		WithArgs(req.ID, req.OrderReference, req.Amount, req.Reason,
			req.Status, req.UserID, req.CreatedAt, req.ResolvedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingRefundRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	req := newTestRequest()

	rows := pgxmock.NewRows([]string{"id", "order_reference", "amount", "reason", "status", "user_id", "created_at", "resolved_at"}).
		AddRow(req.ID, req.OrderReference, req.Amount, req.Reason, req.Status, req.UserID, req.CreatedAt, req.ResolvedAt)

	mock.ExpectQuery("SELECT (.+) FROM refund_requests WHERE id").
		WithArgs(req.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, req.OrderReference, got.OrderReference)
	assert.False(t, got.IsResolved())
}

func TestPendingRefundRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM refund_requests WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_reference", "amount", "reason", "status", "user_id", "created_at", "resolved_at"}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPendingRefundRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	req := newTestRequest()
	summary := "2x ramen, 1x gyoza"

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(domain.RefundRequestPending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	rows := pgxmock.NewRows([]string{"id", "order_reference", "amount", "reason", "status", "user_id", "created_at", "resolved_at", "requester_name", "order_summary"}).
		AddRow(req.ID, req.OrderReference, req.Amount, req.Reason, req.Status, req.UserID, req.CreatedAt, req.ResolvedAt, "Dana", &summary)

	mock.ExpectQuery("SELECT (.+) FROM refund_requests rr").
		WithArgs(domain.RefundRequestPending, 50, 0).
		WillReturnRows(rows)

	views, total, err := repo.List(context.Background(), ports.ListPendingParams{
		Status: domain.RefundRequestPending,
		Limit:  50,
		Offset: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Equal(t, "Dana", views[0].RequesterName)
	require.NotNil(t, views[0].OrderSummary)
	assert.Equal(t, summary, *views[0].OrderSummary)
}

func TestPendingRefundRepo_List_MissingJoins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	req := newTestRequest()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(domain.RefundRequestPending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	rows := pgxmock.NewRows([]string{"id", "order_reference", "amount", "reason", "status", "user_id", "created_at", "resolved_at", "requester_name", "order_summary"}).
		AddRow(req.ID, req.OrderReference, req.Amount, req.Reason, req.Status, req.UserID, req.CreatedAt, req.ResolvedAt, "", (*string)(nil))

	mock.ExpectQuery("SELECT (.+) FROM refund_requests rr").
		WithArgs(domain.RefundRequestPending, 50, 0).
		WillReturnRows(rows)

	views, _, err := repo.List(context.Background(), ports.ListPendingParams{
		Status: domain.RefundRequestPending,
		Limit:  50,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].RequesterName)
	assert.Nil(t, views[0].OrderSummary)
}

func TestPendingRefundRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE refund_requests SET status").
		WithArgs(domain.RefundRequestRejected, now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), id, domain.RefundRequestRejected, now)
	assert.NoError(t, err)
}

func TestPendingRefundRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingRefundRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE refund_requests SET status").
		WithArgs(domain.RefundRequestCompleted, now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), id, domain.RefundRequestCompleted, now)
	assert.Error(t, err)
}

func TestProfileRepo_GetRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT role FROM profiles").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(domain.RoleAdmin))

	role, err := repo.GetRole(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestProfileRepo_GetRole_NoProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT role FROM profiles").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"role"}))

	role, err := repo.GetRole(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, role)
}

func TestProfileRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "display_name", "role"}).AddRow(id, "Dana", "customer"))

	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Dana", p.DisplayName)
	assert.False(t, p.IsAdmin())
}
