package handler

import (
	"strconv"

	"vcard-payments/internal/adapter/http/dto"
	"vcard-payments/internal/adapter/http/middleware"
	"vcard-payments/internal/core/ports"
	"vcard-payments/pkg/apperror"
	"vcard-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionsHandler handles the user-facing transaction history.
type TransactionsHandler struct {
	querySvc ports.QueryService
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(querySvc ports.QueryService) *TransactionsHandler {
	return &TransactionsHandler{querySvc: querySvc}
}

// List handles GET /api/v1/transactions. Results are served from a
// short-lived cache unless force_refresh=true.
func (h *TransactionsHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	forceRefresh, _ := strconv.ParseBool(c.DefaultQuery("force_refresh", "false"))

	entries, err := h.querySvc.ListUserTransactions(c.Request.Context(), userID, limit, forceRefresh)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.FromLedgerEntry(&entries[i]))
	}

	response.OK(c, dto.TransactionListResponse{Items: items})
}
