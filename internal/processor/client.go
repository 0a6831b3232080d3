// Package processor implements the HTTP client for the external payment
// processor: request shaping, authenticated calls and response
// normalization.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vcard-payments/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var processorCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "payments_processor_calls_total",
	Help: "Processor calls by operation and outcome code",
}, []string{"operation", "code"})

// Result is the authoritative outcome of one processor call. It exists
// only transiently in memory between the call and the ledger write.
type Result struct {
	TransactionID int64
	Status        string
	// Refund-only. Nil means the processor omitted the balance: it is
	// unknown and must be re-queried, never assumed zero.
	NewWalletBalance *decimal.Decimal
	NewCardBalance   *decimal.Decimal
}

// HTTPClient is the transport used for processor calls. *http.Client
// satisfies it; tests substitute their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs authenticated calls against the external payment
// processor. It never logs a full card number or CVV at any level.
type Client struct {
	baseURL string
	apiKey  string
	http    HTTPClient
	log     zerolog.Logger
}

// NewClient creates a processor client from configuration. The API key is
// injected here and sent only as the x-api-key header.
func NewClient(cfg config.ProcessorConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
		log:     log,
	}
}

type chargePayload struct {
	CardNumber string      `json:"card_number"`
	CVV        string      `json:"cvv"`
	Amount     json.Number `json:"amount"`
	OrderID    string      `json:"order_id"`
}

type chargeBody struct {
	TransactionID int64  `json:"transaction_id"`
	Status        string `json:"status"`
}

type refundPayload struct {
	OrderID string      `json:"order_id"`
	Amount  json.Number `json:"amount"`
}

type refundBody struct {
	Status       string           `json:"status"`
	RefundTxnID  int64            `json:"refund_txn_id"`
	NewWalletBal *decimal.Decimal `json:"new_wallet_bal"`
	NewCardBal   *decimal.Decimal `json:"new_card_bal"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}

// Charge submits a payment instruction to the processor's transaction
// endpoint. A 2xx response with no status field yields "frozen": funds
// are reserved, not settled, and callers must not read that as approval.
func (c *Client) Charge(ctx context.Context, req *ChargeRequest) (*Result, error) {
	payload := chargePayload{
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		Amount:     json.Number(req.Amount.StringFixed(amountPlaces)),
		OrderID:    req.OrderReference,
	}

	body, err := c.post(ctx, "/transactions", "charge", payload)
	if err != nil {
		c.log.Warn().
			Str("order_ref", req.OrderReference).
			Str("card_last4", req.LastFour()).
			Err(err).
			Msg("processor charge failed")
		return nil, err
	}

	var parsed chargeBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		processorCalls.WithLabelValues("charge", codeUnknown).Inc()
		return nil, &Error{Code: codeUnknown, Message: "malformed processor response", HTTPStatus: http.StatusBadGateway}
	}

	status := parsed.Status
	if status == "" {
		status = "frozen"
	}

	processorCalls.WithLabelValues("charge", "ok").Inc()
	c.log.Info().
		Str("order_ref", req.OrderReference).
		Str("card_last4", req.LastFour()).
		Int64("processor_txn_id", parsed.TransactionID).
		Str("status", status).
		Msg("processor charge accepted")

	return &Result{TransactionID: parsed.TransactionID, Status: status}, nil
}

// Refund submits a refund instruction to the processor's refund endpoint.
func (c *Client) Refund(ctx context.Context, req *RefundRequest) (*Result, error) {
	payload := refundPayload{
		OrderID: req.OrderReference,
		Amount:  json.Number(req.Amount.StringFixed(amountPlaces)),
	}

	body, err := c.post(ctx, "/refund", "refund", payload)
	if err != nil {
		c.log.Warn().Str("order_ref", req.OrderReference).Err(err).Msg("processor refund failed")
		return nil, err
	}

	var parsed refundBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		processorCalls.WithLabelValues("refund", codeUnknown).Inc()
		return nil, &Error{Code: codeUnknown, Message: "malformed processor response", HTTPStatus: http.StatusBadGateway}
	}

	status := parsed.Status
	if status == "" {
		status = "frozen"
	}

	processorCalls.WithLabelValues("refund", "ok").Inc()
	c.log.Info().
		Str("order_ref", req.OrderReference).
		Int64("refund_txn_id", parsed.RefundTxnID).
		Str("status", status).
		Msg("processor refund accepted")

	return &Result{
		TransactionID:    parsed.RefundTxnID,
		Status:           status,
		NewWalletBalance: parsed.NewWalletBal,
		NewCardBalance:   parsed.NewCardBal,
	}, nil
}

// post issues the authenticated call and normalizes failures. Transport
// errors (including context deadline) come back as code network_error:
// the remote outcome is ambiguous and the call must not be retried.
func (c *Client) post(ctx context.Context, path, operation string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal processor payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build processor request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		processorCalls.WithLabelValues(operation, CodeNetworkError).Inc()
		return nil, &Error{
			Code:       CodeNetworkError,
			Message:    "payment processor unreachable, outcome unknown",
			HTTPStatus: http.StatusBadGateway,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		processorCalls.WithLabelValues(operation, CodeNetworkError).Inc()
		return nil, &Error{
			Code:       CodeNetworkError,
			Message:    "reading processor response failed, outcome unknown",
			HTTPStatus: http.StatusBadGateway,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var parsed errorBody
		if err := json.Unmarshal(body, &parsed); err != nil || parsed.Code == "" {
			parsed.Code = codeUnknown
			parsed.Message = http.StatusText(resp.StatusCode)
		}
		processorCalls.WithLabelValues(operation, parsed.Code).Inc()
		return nil, &Error{
			Code:       parsed.Code,
			Message:    parsed.Message,
			HTTPStatus: resp.StatusCode,
		}
	}

	return body, nil
}
