package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages a customer's cart.
type CartUsecase interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*entity.Cart, error)
	ReduceItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*entity.Cart, error)
	// ListItems returns the cart lines with products resolved; no cart yields an empty list.
	ListItems(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)
}
