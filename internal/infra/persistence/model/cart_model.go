package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel is the GORM-specific struct for the 'carts' table. One row per user.
type CartModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;unique;not null"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is one product line of a cart, unique per (cart, product).
type CartItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Position  int             `gorm:"not null;default:0"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
