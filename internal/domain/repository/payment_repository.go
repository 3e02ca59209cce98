package repository

import (
	"context"
	"time"

	"shop/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("transaction reference already exists")
)

// PaymentTransactionRepository defines the interface for the transaction ledger.
type PaymentTransactionRepository interface {
	FindByReference(ctx context.Context, reference string) (*entity.Transaction, error)
	// FindOrCreate returns the stored transaction for txn.Reference, inserting txn when none exists.
	FindOrCreate(ctx context.Context, txn *entity.Transaction) (*entity.Transaction, entity.Lookup, error)
	// UpdatePending overwrites amount, currency, lines and link of a transaction
	// that is still pending. It reports false when no pending row matched.
	UpdatePending(ctx context.Context, txn *entity.Transaction) (bool, error)
	// CompareAndSwapStatus moves the transaction from one status to another and reports
	// whether this call performed the swap.
	CompareAndSwapStatus(ctx context.Context, reference string, from, to entity.TransactionStatus) (bool, error)
	// SetFulfilmentStatus records an admin fulfilment status on a transaction that
	// has already been paid. Pending and failed transactions are left untouched.
	SetFulfilmentStatus(ctx context.Context, reference string, status entity.TransactionStatus) (bool, error)
	SetGatewayTransactionID(ctx context.Context, reference, gatewayID string) error
	// SumAmount totals transactions in the given statuses, optionally only those created since.
	SumAmount(ctx context.Context, statuses []entity.TransactionStatus, since *time.Time) (decimal.Decimal, error)
	Count(ctx context.Context, since *time.Time) (int64, error)
}
