package model

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// TransactionRef is unique so that a transaction yields at most one order.
type OrderModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID          `gorm:"type:uuid;not null;index"`
	TransactionRef string             `gorm:"type:varchar(64);unique;not null"`
	Lines          []entity.OrderLine `gorm:"type:jsonb;serializer:json"`
	Total          decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Status         string             `gorm:"type:varchar(20);not null;default:'processing'"`
	Backordered    bool               `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
