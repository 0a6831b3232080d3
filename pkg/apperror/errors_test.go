package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	e := New("AUTH_001", "Missing or invalid credentials", http.StatusUnauthorized)
	assert.Equal(t, "[AUTH_001] Missing or invalid credentials", e.Error())
}

func TestAppError_WrapAndUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, inner)

	assert.Contains(t, e.Error(), "connection refused")
	assert.ErrorIs(t, e, inner)
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrForbidden())

	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
}

func TestErrInvalidFields_ListsAllFields(t *testing.T) {
	e := ErrInvalidFields("card_number", "cvv")
	assert.Equal(t, "VAL_001", e.Code)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus)
	assert.Contains(t, e.Message, "card_number")
	assert.Contains(t, e.Message, "cvv")
}

func TestErrLedgerWrite_IsNotAFailureStatus(t *testing.T) {
	e := ErrLedgerWrite(errors.New("insert failed"))
	// The money already moved at the processor; recording failure must not
	// surface as an error status to the payer.
	assert.Equal(t, http.StatusOK, e.HTTPStatus)
	assert.Equal(t, "LEDGER_001", e.Code)
}

func TestErrorConstructors_Statuses(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrUnauthorized().HTTPStatus)
	assert.Equal(t, http.StatusForbidden, ErrForbidden().HTTPStatus)
	assert.Equal(t, http.StatusNotFound, ErrNotFound("refund request").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, ErrRefundExceedsPayment().HTTPStatus)
	assert.Equal(t, http.StatusConflict, ErrRefundInProgress().HTTPStatus)
	assert.Equal(t, http.StatusConflict, ErrRefundRequestResolved().HTTPStatus)
	assert.Equal(t, http.StatusTooManyRequests, ErrRateLimitExceeded().HTTPStatus)
}
