package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a payment attempt.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionDelivered  TransactionStatus = "delivered"
	TransactionCancelled  TransactionStatus = "cancelled"
	TransactionFailed     TransactionStatus = "failed"
)

// SalesStatuses are the transaction states that count towards revenue.
var SalesStatuses = []TransactionStatus{TransactionCompleted, TransactionDelivered}

// Transaction is one payment attempt, keyed by its unique Reference.
type Transaction struct {
	ID                   uuid.UUID
	Reference            string // txn_<token>_<unix millis>, the idempotency key.
	UserID               uuid.UUID
	Amount               decimal.Decimal
	Currency             string
	Status               TransactionStatus
	Lines                []TransactionLine
	PaymentLink          string // Hosted checkout link returned by the gateway.
	GatewayTransactionID string // Set once the gateway has confirmed the payment.
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TransactionLine snapshots a product line at checkout time.
type TransactionLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal is price times quantity.
func (l TransactionLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SumLines totals a set of lines.
func SumLines(lines []TransactionLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	return total
}
