package processor

import (
	"strings"

	"vcard-payments/internal/card"
	"vcard-payments/pkg/apperror"

	"github.com/shopspring/decimal"
)

// amountPlaces is the fixed precision for monetary amounts on the wire.
const amountPlaces = 5

// ChargeRequest is a validated payment instruction ready for the
// processor. CardNumber and CVV live only here and in the outbound HTTP
// body; they must never reach the ledger or the logs.
type ChargeRequest struct {
	CardNumber     string
	CVV            string
	Amount         decimal.Decimal
	OrderReference string
}

// LastFour returns the retainable card fragment for this request.
func (r *ChargeRequest) LastFour() string {
	return card.LastFour(r.CardNumber)
}

// RefundRequest is a validated refund instruction.
type RefundRequest struct {
	OrderReference string
	Amount         decimal.Decimal
	Reason         string
}

// BuildChargeRequest normalizes and validates raw charge input. All
// failing fields are reported together in a single validation error; a
// request that fails here never reaches the processor.
func BuildChargeRequest(cardNumber, cvv string, amount decimal.Decimal, orderRef string) (*ChargeRequest, error) {
	var bad []string
	if !card.ValidNumber(cardNumber) {
		bad = append(bad, "card_number")
	}
	if !card.ValidCVV(cvv) {
		bad = append(bad, "cvv")
	}
	if !card.ValidAmount(amount) {
		bad = append(bad, "amount")
	}
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		bad = append(bad, "order_reference")
	}
	if len(bad) > 0 {
		return nil, apperror.ErrInvalidFields(bad...)
	}

	return &ChargeRequest{
		CardNumber:     card.Digits(cardNumber),
		CVV:            card.Digits(cvv),
		Amount:         amount.Round(amountPlaces),
		OrderReference: orderRef,
	}, nil
}

// BuildRefundRequest validates raw refund input.
func BuildRefundRequest(orderRef string, amount decimal.Decimal, reason string) (*RefundRequest, error) {
	var bad []string
	if !card.ValidAmount(amount) {
		bad = append(bad, "amount")
	}
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		bad = append(bad, "order_reference")
	}
	if len(bad) > 0 {
		return nil, apperror.ErrInvalidFields(bad...)
	}

	return &RefundRequest{
		OrderReference: orderRef,
		Amount:         amount.Round(amountPlaces),
		Reason:         strings.TrimSpace(reason),
	}, nil
}
