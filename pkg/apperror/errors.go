package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication & Authorization (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Missing or invalid credentials", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Admin role required", http.StatusForbidden)
}

// ---- Request Validation (VAL) ----

// ErrInvalidFields reports every failing field of a request at once.
func ErrInvalidFields(fields ...string) *AppError {
	return New("VAL_001", "Invalid fields: "+strings.Join(fields, ", "), http.StatusBadRequest)
}

// Validation returns a VAL_001 error with a free-form message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Refund Business Logic (REFUND) ----

func ErrNotFound(entity string) *AppError {
	return New("REFUND_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrRefundExceedsPayment() *AppError {
	return New("REFUND_002", "Cumulative refunds would exceed the recorded payment", http.StatusBadRequest)
}

func ErrRefundInProgress() *AppError {
	return New("REFUND_003", "Another refund for this order is in progress", http.StatusConflict)
}

func ErrRefundRequestResolved() *AppError {
	return New("REFUND_004", "Refund request is already resolved", http.StatusConflict)
}

// ---- Ledger Recording (LEDGER) ----

// ErrLedgerWrite marks the partial-success condition: the processor moved
// the money but the local ledger insert failed. Callers must NOT convert
// this into a failed payment.
func ErrLedgerWrite(err error) *AppError {
	return Wrap("LEDGER_001", "Transaction succeeded but local recording failed", http.StatusOK, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
