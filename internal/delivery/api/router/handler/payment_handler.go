package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves hosted checkout and its verification callback.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CheckoutItem is a product and quantity. Prices are looked up server-side.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CheckoutRequest struct {
	CartItems []CheckoutItem `json:"cartItems" validate:"dive"`
	// Reference retries an earlier pending checkout.
	Reference string `json:"tx_ref"`
}

type VerifyTransactionRequest struct {
	TransactionID string         `json:"transaction_id"`
	Reference     string         `json:"tx_ref"`
	CartItems     []CheckoutItem `json:"cartItems" validate:"dive"`
}

type CheckoutResponse struct {
	Link        string           `json:"link"`
	Transaction *TransactionView `json:"transaction"`
	Gateway     json.RawMessage  `json:"gateway,omitempty"`
}

type VerifyResponse struct {
	AlreadyVerified bool            `json:"alreadyVerified"`
	Order           *OrderView      `json:"order,omitempty"`
	Gateway         json.RawMessage `json:"gateway,omitempty"`
}

func checkoutLines(items []CheckoutItem) []usecase.CheckoutLine {
	lines := make([]usecase.CheckoutLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, usecase.CheckoutLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return lines
}

// Initiate creates a pending transaction and returns the hosted payment link.
func (h *PaymentHandler) Initiate(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.paymentUC.Initiate(c.Request().Context(), &usecase.InitiatePaymentInput{
		UserID:    id.ID,
		Lines:     checkoutLines(req.CartItems),
		Reference: req.Reference,
	})
	if err != nil {
		return err
	}

	return response.OK(c, &CheckoutResponse{
		Link:        out.PaymentLink,
		Transaction: newTransactionView(out.Transaction),
		Gateway:     out.Gateway,
	}, "Payment link created")
}

// Verify confirms a payment with the gateway and commits the purchase once.
func (h *PaymentHandler) Verify(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req VerifyTransactionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.paymentUC.Verify(c.Request().Context(), &usecase.VerifyPaymentInput{
		UserID:        id.ID,
		TransactionID: req.TransactionID,
		Reference:     req.Reference,
		Lines:         checkoutLines(req.CartItems),
	})
	if err != nil {
		return err
	}

	message := "Payment verified and order created"
	if out.AlreadyVerified {
		message = "Transaction already verified"
	}

	return response.OK(c, &VerifyResponse{
		AlreadyVerified: out.AlreadyVerified,
		Order:           newOrderView(out.Order),
		Gateway:         out.Gateway,
	}, message)
}

// QRCode renders the caller's payment link as a PNG.
func (h *PaymentHandler) QRCode(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	png, err := h.paymentUC.CheckoutQRCode(c.Request().Context(), id.ID, c.Param("ref"))
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
