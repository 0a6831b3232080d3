package processor

import "fmt"

// Well-known processor error codes. The processor may return others; they
// are passed through to the caller verbatim.
const (
	CodeInvalidCard       = "invalid_card"
	CodeInsufficientFunds = "insufficient_funds"
	CodeCardDisabled      = "card_disabled"

	// CodeNetworkError marks a transport-level failure (timeout, DNS,
	// connection reset). The remote outcome is ambiguous: the charge may
	// have succeeded, so it is never auto-retried.
	CodeNetworkError = "network_error"

	// codeUnknown is used when the processor returns a non-2xx status
	// with an unparseable body.
	codeUnknown = "processor_error"
)

// Error carries the processor's machine-readable code, human message and
// HTTP status. The caller-facing contract mirrors the processor's own
// error shape, so these fields propagate untouched.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("processor: [%s] %s (http %d)", e.Code, e.Message, e.HTTPStatus)
}

// Network reports whether the error is a transport failure with an
// ambiguous remote outcome. Business rejections return false: those are
// definitive and safe for the caller to correct and resubmit.
func (e *Error) Network() bool {
	return e.Code == CodeNetworkError
}
