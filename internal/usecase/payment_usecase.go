package usecase

import (
	"context"
	"encoding/json"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutLine is one line the customer wants to pay for. Prices come from the catalog.
type CheckoutLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// InitiatePaymentInput starts a checkout.
type InitiatePaymentInput struct {
	UserID uuid.UUID
	Lines  []CheckoutLine
	// Reference optionally retries an existing pending transaction owned by the same user.
	Reference string
}

// InitiatePaymentOutput carries the hosted payment link.
type InitiatePaymentOutput struct {
	Transaction *entity.Transaction
	PaymentLink string
	// Gateway is the raw gateway payload.
	Gateway json.RawMessage
}

// VerifyPaymentInput is the gateway callback.
type VerifyPaymentInput struct {
	UserID        uuid.UUID
	TransactionID string
	Reference     string
	// Lines are only used when no transaction was stored for Reference.
	Lines []CheckoutLine
}

// VerifyPaymentOutput reports the verification result.
type VerifyPaymentOutput struct {
	AlreadyVerified bool
	Order           *entity.Order
	// Gateway is the raw gateway transaction payload.
	Gateway json.RawMessage
}

// PaymentUsecase runs the hosted-checkout payment workflow.
type PaymentUsecase interface {
	Initiate(ctx context.Context, input *InitiatePaymentInput) (*InitiatePaymentOutput, error)
	Verify(ctx context.Context, input *VerifyPaymentInput) (*VerifyPaymentOutput, error)
	// CheckoutQRCode renders the stored payment link of the caller's transaction.
	CheckoutQRCode(ctx context.Context, userID uuid.UUID, reference string) ([]byte, error)
}
