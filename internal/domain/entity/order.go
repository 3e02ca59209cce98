package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderCompleted  OrderStatus = "completed"
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus validates a status string.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch status := OrderStatus(s); status {
	case OrderPending, OrderCompleted, OrderProcessing, OrderDelivered, OrderCancelled:
		return status, true
	default:
		return "", false
	}
}

// MirroredTransactionStatus maps the order status onto the originating
// transaction. Pending has no paid counterpart and is never mirrored.
func (s OrderStatus) MirroredTransactionStatus() (TransactionStatus, bool) {
	switch s {
	case OrderCompleted:
		return TransactionCompleted, true
	case OrderProcessing:
		return TransactionProcessing, true
	case OrderDelivered:
		return TransactionDelivered, true
	case OrderCancelled:
		return TransactionCancelled, true
	default:
		return "", false
	}
}

// Order is created once per successfully verified transaction.
type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TransactionRef string
	Lines          []OrderLine
	Total          decimal.Decimal
	Status         OrderStatus
	// Backordered is set when stock ran out between checkout and payment.
	Backordered bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLine snapshots one purchased product.
type OrderLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// NewOrderFromTransaction builds the order for a confirmed transaction. The total
// and lines are taken from the stored transaction, not from the client.
func NewOrderFromTransaction(txn *Transaction) *Order {
	lines := make([]OrderLine, 0, len(txn.Lines))
	for _, l := range txn.Lines {
		lines = append(lines, OrderLine(l))
	}

	return &Order{
		ID:             uuid.New(),
		UserID:         txn.UserID,
		TransactionRef: txn.Reference,
		Lines:          lines,
		Total:          txn.Amount,
		Status:         OrderProcessing,
	}
}
