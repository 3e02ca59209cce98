package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindByIDs returns the products that exist, keyed by id.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DecrementStock adds qty to the sales count and takes up to qty units off
	// stock, soft-deleted products included. It returns the units stock could not cover.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) (shortfall int, err error)
}
