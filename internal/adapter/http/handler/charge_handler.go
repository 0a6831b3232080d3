package handler

import (
	"vcard-payments/internal/adapter/http/dto"
	"vcard-payments/internal/adapter/http/middleware"
	"vcard-payments/internal/core/ports"
	"vcard-payments/pkg/apperror"
	"vcard-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChargeHandler handles virtual card charges.
type ChargeHandler struct {
	txnSvc ports.TransactionService
}

// NewChargeHandler creates a new ChargeHandler.
func NewChargeHandler(txnSvc ports.TransactionService) *ChargeHandler {
	return &ChargeHandler{txnSvc: txnSvc}
}

// Charge handles POST /api/v1/cards/charge.
func (h *ChargeHandler) Charge(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.txnSvc.ChargeCard(c.Request.Context(), ports.ChargeCardInput{
		UserID:         userID,
		CardNumber:     req.CardNumber,
		CVV:            req.CVV,
		Amount:         req.Amount,
		OrderReference: req.OrderReference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ChargeResponse{
		TransactionID:   outcome.ProcessorTxnID,
		Status:          outcome.Status,
		RecordingFailed: outcome.RecordingFailed,
	}
	if outcome.Entry != nil {
		ledger := dto.FromLedgerEntry(outcome.Entry)
		resp.Ledger = &ledger
	}

	response.OK(c, resp)
}
