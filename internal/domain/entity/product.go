package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the catalog visibility of a product.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
)

// Valid reports whether the status is a known value.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductDiscontinued:
		return true
	default:
		return false
	}
}

// Product is a catalog entry. Quantity is the live stock and never goes negative.
type Product struct {
	ID          uuid.UUID
	AdminID     uuid.UUID // Admin who created the product.
	Name        string
	Description string
	NewPrice    decimal.Decimal // Current unit price.
	OldPrice    decimal.Decimal // Previous price, shown struck through.
	Discount    decimal.Decimal
	Categories  []string
	Section     string
	Brand       string
	Quantity    int
	Images      []string
	Sizes       []string
	Colors      []string
	SalesCount  int
	Status      ProductStatus
	Shipping    Shipping
	Inventory   Inventory
	Variants    []Variant
	Metadata    Metadata
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Shipping struct {
	Weight       float64         `json:"weight"`
	Dimensions   Dimensions      `json:"dimensions"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Inventory struct {
	SKU                  string `json:"sku"`
	StockQuantity        int    `json:"stockQuantity"`
	MinimumStockQuantity int    `json:"minimumStockQuantity"`
	Backordered          bool   `json:"backordered"`
}

type Variant struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Metadata struct {
	Tags            []string `json:"tags"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// InStock reports whether qty units can be taken from current stock.
func (p *Product) InStock(qty int) bool {
	return qty > 0 && p.Quantity >= qty
}

// PrimaryImage returns the first image URL or an empty string.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}
