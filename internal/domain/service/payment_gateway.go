package service

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrPaymentLinkExpired is returned by a gateway that rejects a stale hosted link.
var ErrPaymentLinkExpired = errors.New("payment link expired")

// PaymentCustomer identifies the payer to the gateway.
type PaymentCustomer struct {
	Email string
	Phone string
	Name  string
}

// PaymentItem describes one purchased line for the hosted checkout page.
type PaymentItem struct {
	ProductID   string
	Title       string
	Description string
	Logo        string
}

// PaymentRequest asks the gateway for a hosted payment link.
type PaymentRequest struct {
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	RedirectURL string
	Customer    PaymentCustomer
	Items       []PaymentItem
}

// PaymentLink is the gateway's answer to a PaymentRequest.
type PaymentLink struct {
	Link string
	// Raw is the full gateway response body, returned to the client unchanged.
	Raw json.RawMessage
}

// PaymentVerification is the gateway's view of a transaction.
type PaymentVerification struct {
	// Successful is true only if the call succeeded and the charge settled.
	Successful    bool
	Status        string
	Reference     string
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	// Data is the gateway's transaction payload, returned to the client unchanged.
	Data json.RawMessage
}

// PaymentGateway is the hosted-checkout payment provider.
type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req *PaymentRequest) (*PaymentLink, error)
	VerifyTransaction(ctx context.Context, transactionID string) (*PaymentVerification, error)
}
