package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// FindByUserID loads the cart with its items. Item products are resolved when withProducts is set.
	FindByUserID(ctx context.Context, userID uuid.UUID, withProducts bool) (*entity.Cart, error)
	// FindOrCreate returns the user's cart, creating an empty one on first use.
	FindOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, entity.Lookup, error)
	// Save replaces the stored items with cart.Items.
	Save(ctx context.Context, cart *entity.Cart) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
