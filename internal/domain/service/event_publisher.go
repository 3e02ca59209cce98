package service

import (
	"context"
)

// Message attribute keys carried next to every published event.
const (
	AttrEventType      = "event_type"
	AttrOrderID        = "order_id"
	AttrTransactionRef = "transaction_ref"
	AttrRequestID      = "request_id"

	EventPurchaseCompleted = "purchase.completed"
)

// PurchaseCompletedEvent is published after a purchase commits.
type PurchaseCompletedEvent struct {
	RequestID      string          `json:"request_id,omitempty"` // For distributed tracing
	OrderID        string          `json:"order_id"`
	TransactionRef string          `json:"transaction_ref"`
	UserID         string          `json:"user_id"`
	Email          string          `json:"email"`
	CustomerName   string          `json:"customer_name"`
	Total          string          `json:"total"`
	Currency       string          `json:"currency"`
	Lines          []PurchasedLine `json:"lines"`
}

// PurchasedLine is one product line of a PurchaseCompletedEvent.
type PurchasedLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishPurchaseCompleted(ctx context.Context, event *PurchaseCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
