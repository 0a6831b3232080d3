package handler

import (
	"strconv"

	"vcard-payments/internal/adapter/http/dto"
	"vcard-payments/internal/adapter/http/middleware"
	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"
	"vcard-payments/pkg/apperror"
	"vcard-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RefundHandler handles refund execution and the refund-request
// lifecycle.
type RefundHandler struct {
	txnSvc   ports.TransactionService
	querySvc ports.QueryService
}

// NewRefundHandler creates a new RefundHandler.
func NewRefundHandler(txnSvc ports.TransactionService, querySvc ports.QueryService) *RefundHandler {
	return &RefundHandler{txnSvc: txnSvc, querySvc: querySvc}
}

// Execute handles POST /api/v1/refunds (admin only).
func (h *RefundHandler) Execute(c *gin.Context) {
	adminID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.RefundExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	input := ports.RefundInput{
		AdminID:        adminID,
		OrderReference: req.OrderReference,
		Amount:         req.Amount,
		Reason:         req.Reason,
	}
	if req.RequestID != nil {
		id, err := uuid.Parse(*req.RequestID)
		if err != nil {
			response.Error(c, apperror.Validation("request_id must be a valid UUID"))
			return
		}
		input.RequestID = &id
	}

	outcome, err := h.txnSvc.Refund(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.RefundResponse{
		TransactionID:   outcome.ProcessorTxnID,
		Status:          outcome.Status,
		RecordingFailed: outcome.RecordingFailed,
	}
	if outcome.NewWalletBalance != nil {
		s := outcome.NewWalletBalance.StringFixed(5)
		resp.NewWalletBalance = &s
	}
	if outcome.NewCardBalance != nil {
		s := outcome.NewCardBalance.StringFixed(5)
		resp.NewCardBalance = &s
	}
	if outcome.Entry != nil {
		ledger := dto.FromLedgerEntry(outcome.Entry)
		resp.Ledger = &ledger
	}

	response.OK(c, resp)
}

// CreateRequest handles POST /api/v1/refund-requests.
func (h *RefundHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.RefundRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	created, err := h.querySvc.CreateRefundRequest(c.Request.Context(), ports.CreateRefundRequestInput{
		UserID:         userID,
		OrderReference: req.OrderReference,
		Amount:         req.Amount,
		Reason:         req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromRefundRequest(created))
}

// List handles GET /api/v1/refund-requests (admin only).
func (h *RefundHandler) List(c *gin.Context) {
	params := ports.ListPendingParams{
		Status: domain.RefundRequestStatus(c.Query("status")),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Offset = n
		}
	}

	views, total, err := h.querySvc.ListPendingRefundRequests(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RefundRequestResponse, 0, len(views))
	for i := range views {
		items = append(items, dto.FromRefundView(&views[i]))
	}

	response.OK(c, dto.RefundRequestListResponse{
		Items:  items,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// Reject handles POST /api/v1/refund-requests/:id/reject (admin only).
func (h *RefundHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	req, err := h.querySvc.RejectRefundRequest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromRefundRequest(req))
}
