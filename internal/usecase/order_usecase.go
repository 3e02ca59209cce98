package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderUsecase reads and administers orders.
type OrderUsecase interface {
	MyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	AllOrders(ctx context.Context) ([]*entity.Order, error)
	// UpdateStatus changes the order status and mirrors it onto the originating transaction.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
}
