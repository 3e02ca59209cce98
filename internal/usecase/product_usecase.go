package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the admin-editable part of a product. Images may be data URIs or URLs.
type ProductInput struct {
	Name        string
	Description string
	NewPrice    decimal.Decimal
	OldPrice    decimal.Decimal
	Discount    decimal.Decimal
	Categories  []string
	Section     string
	Brand       string
	Quantity    int
	Images      []string
	Sizes       []string
	Colors      []string
	Status      entity.ProductStatus
	Shipping    entity.Shipping
	Inventory   entity.Inventory
	Variants    []entity.Variant
	Metadata    entity.Metadata
}

// ProductUsecase manages the catalog.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, adminID uuid.UUID, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
