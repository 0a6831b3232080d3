package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vcard-payments/internal/adapter/http/middleware"
	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"
	"vcard-payments/internal/core/ports/mocks"
	"vcard-payments/internal/processor"
	"vcard-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const handlerTestPAN = "4532015112830366"

func authedContext(t *testing.T, userID uuid.UUID, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxUserID, userID)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Charge Handler Tests ---

func TestCharge_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	h := NewChargeHandler(txnSvc)
	userID := uuid.New()

	entry := &domain.LedgerEntry{
		ID:             uuid.New(),
		ProcessorTxnID: 42,
		Kind:           domain.LedgerKindPayment,
		OrderReference: "order-1",
		Amount:         decimal.RequireFromString("100.5"),
		Status:         domain.StatusApproved,
		UserID:         userID,
		CardLastFour:   "0366",
		CreatedAt:      time.Now().UTC(),
	}
	txnSvc.EXPECT().ChargeCard(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input ports.ChargeCardInput) (*ports.ChargeOutcome, error) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, handlerTestPAN, input.CardNumber)
			assert.Equal(t, "order-1", input.OrderReference)
			return &ports.ChargeOutcome{ProcessorTxnID: 42, Status: domain.StatusApproved, Entry: entry}, nil
		})

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/cards/charge", map[string]interface{}{
		"card_number":     handlerTestPAN,
		"cvv":             "123",
		"amount":          100.5,
		"order_reference": "order-1",
	})
	h.Charge(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["transaction_id"])
	assert.Equal(t, domain.StatusApproved, data["status"])
	assert.Nil(t, data["recording_failed"])
	ledger := data["ledger"].(map[string]interface{})
	assert.Equal(t, "100.50000", ledger["amount"])
	assert.Equal(t, "0366", ledger["card_last_four"])
}

func TestCharge_RecordingFailedStill200(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	h := NewChargeHandler(txnSvc)
	userID := uuid.New()

	txnSvc.EXPECT().ChargeCard(gomock.Any(), gomock.Any()).
		Return(&ports.ChargeOutcome{ProcessorTxnID: 43, Status: domain.StatusApproved, RecordingFailed: true}, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/cards/charge", map[string]interface{}{
		"card_number":     handlerTestPAN,
		"cvv":             "123",
		"amount":          10,
		"order_reference": "order-2",
	})
	h.Charge(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["recording_failed"])
	assert.Nil(t, data["ledger"])
}

func TestCharge_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	h := NewChargeHandler(txnSvc)

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/cards/charge", map[string]interface{}{
		"card_number":     "4532015112830367", // fails Luhn
		"cvv":             "123",
		"amount":          10,
		"order_reference": "order-3",
	})
	h.Charge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestCharge_ProcessorErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	h := NewChargeHandler(txnSvc)

	txnSvc.EXPECT().ChargeCard(gomock.Any(), gomock.Any()).
		Return(nil, &processor.Error{Code: processor.CodeInvalidCard, Message: "Card number is invalid", HTTPStatus: http.StatusBadRequest})

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/cards/charge", map[string]interface{}{
		"card_number":     handlerTestPAN,
		"cvv":             "123",
		"amount":          10,
		"order_reference": "order-4",
	})
	h.Charge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, processor.CodeInvalidCard, resp["error_code"])
	assert.Equal(t, "Card number is invalid", resp["message"])
}

func TestCharge_NetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	h := NewChargeHandler(txnSvc)

	txnSvc.EXPECT().ChargeCard(gomock.Any(), gomock.Any()).
		Return(nil, &processor.Error{Code: processor.CodeNetworkError, Message: "connection timed out", HTTPStatus: http.StatusBadGateway})

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/cards/charge", map[string]interface{}{
		"card_number":     handlerTestPAN,
		"cvv":             "123",
		"amount":          10,
		"order_reference": "order-5",
	})
	h.Charge(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "network_error")
}

// --- Refund Handler Tests ---

func TestRefundExecute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewRefundHandler(txnSvc, querySvc)
	adminID := uuid.New()
	wallet := decimal.RequireFromString("1250.75")

	txnSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input ports.RefundInput) (*ports.RefundOutcome, error) {
			assert.Equal(t, adminID, input.AdminID)
			assert.Equal(t, "order-1", input.OrderReference)
			assert.Nil(t, input.RequestID)
			return &ports.RefundOutcome{
				ProcessorTxnID:   513,
				Status:           domain.StatusApproved,
				NewWalletBalance: &wallet,
			}, nil
		})

	c, w := authedContext(t, adminID, http.MethodPost, "/api/v1/refunds", map[string]interface{}{
		"order_reference": "order-1",
		"amount":          40,
		"reason":          "wrong order",
	})
	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(513), data["transaction_id"])
	assert.Equal(t, "1250.75000", data["new_wallet_balance"])
	assert.Nil(t, data["new_card_balance"])
}

func TestRefundExecute_WithRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewRefundHandler(txnSvc, querySvc)
	requestID := uuid.New()

	txnSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input ports.RefundInput) (*ports.RefundOutcome, error) {
			require.NotNil(t, input.RequestID)
			assert.Equal(t, requestID, *input.RequestID)
			return &ports.RefundOutcome{ProcessorTxnID: 514, Status: domain.StatusApproved}, nil
		})

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/refunds", map[string]interface{}{
		"order_reference": "order-2",
		"amount":          10,
		"request_id":      requestID.String(),
	})
	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundExecute_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewRefundHandler(txnSvc, querySvc)

	txnSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrRefundInProgress())

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/refunds", map[string]interface{}{
		"order_reference": "order-3",
		"amount":          10,
	})
	h.Execute(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "REFUND_003")
}

func TestRefundRequestCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewRefundHandler(txnSvc, querySvc)
	userID := uuid.New()

	created := &domain.PendingRefundRequest{
		ID:             uuid.New(),
		OrderReference: "order-4",
		Amount:         decimal.RequireFromString("19.99"),
		Reason:         "never delivered",
		Status:         domain.RefundRequestPending,
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
	}
	querySvc.EXPECT().CreateRefundRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input ports.CreateRefundRequestInput) (*domain.PendingRefundRequest, error) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, "never delivered", input.Reason)
			return created, nil
		})

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/refund-requests", map[string]interface{}{
		"order_reference": "order-4",
		"amount":          19.99,
		"reason":          "never delivered",
	})
	h.CreateRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "19.99000", data["amount"])
}

func TestRefundRequestList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewRefundHandler(txnSvc, querySvc)
	summary := "2x ramen"

	views := []ports.PendingRefundView{{
		PendingRefundRequest: domain.PendingRefundRequest{
			ID:             uuid.New(),
			OrderReference: "order-5",
			Amount:         decimal.RequireFromString("25"),
			Status:         domain.RefundRequestPending,
			UserID:         uuid.New(),
			CreatedAt:      time.Now().UTC(),
		},
		RequesterName: "Dana",
		OrderSummary:  &summary,
	}}
	querySvc.EXPECT().ListPendingRefundRequests(gomock.Any(), ports.ListPendingParams{Limit: 10}).
		Return(views, int64(1), nil)

	c, w := authedContext(t, uuid.New(), http.MethodGet, "/api/v1/refund-requests?limit=10", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Dana", item["requester_name"])
	assert.Equal(t, "2x ramen", item["order_summary"])
}

func TestRefundRequestReject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnSvc := mocks.NewMockTransactionService(ctrl)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewRefundHandler(txnSvc, querySvc)
	id := uuid.New()
	resolved := time.Now().UTC()

	querySvc.EXPECT().RejectRefundRequest(gomock.Any(), id).Return(&domain.PendingRefundRequest{
		ID:         id,
		Status:     domain.RefundRequestRejected,
		Amount:     decimal.RequireFromString("5"),
		UserID:     uuid.New(),
		CreatedAt:  time.Now().UTC(),
		ResolvedAt: &resolved,
	}, nil)

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/refund-requests/"+id.String()+"/reject", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "rejected", data["status"])
	assert.NotNil(t, data["resolved_at"])
}

func TestRefundRequestReject_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRefundHandler(mocks.NewMockTransactionService(ctrl), mocks.NewMockQueryService(ctrl))

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/refund-requests/nope/reject", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.Reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Transactions Handler Tests ---

func TestTransactionsList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewTransactionsHandler(querySvc)
	userID := uuid.New()

	entries := []domain.LedgerEntry{{
		ID:             uuid.New(),
		ProcessorTxnID: 42,
		Kind:           domain.LedgerKindPayment,
		OrderReference: "order-1",
		Amount:         decimal.RequireFromString("100.5"),
		Status:         domain.StatusApproved,
		UserID:         userID,
		CardLastFour:   "0366",
		CreatedAt:      time.Now().UTC(),
	}}
	querySvc.EXPECT().ListUserTransactions(gomock.Any(), userID, 5, true).Return(entries, nil)

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/transactions?limit=5&force_refresh=true", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "payment", item["kind"])
	assert.Equal(t, "100.50000", item["amount"])
}

func TestTransactionsList_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	querySvc := mocks.NewMockQueryService(ctrl)
	h := NewTransactionsHandler(querySvc)
	userID := uuid.New()

	querySvc.EXPECT().ListUserTransactions(gomock.Any(), userID, 0, false).
		Return(nil, apperror.ErrDatabaseError(errors.New("down")))

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/transactions", nil)
	h.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

// --- Health Handler Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("down")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
