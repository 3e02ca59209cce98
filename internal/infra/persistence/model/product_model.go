package model

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Nested documents are stored as jsonb.
type ProductModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name        string           `gorm:"type:varchar(255);not null"`
	Description string           `gorm:"type:text;not null"`
	NewPrice    decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	OldPrice    decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Discount    decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	Categories  pq.StringArray   `gorm:"type:text[];not null;default:'{}'"`
	Section     string           `gorm:"type:varchar(100)"`
	Brand       string           `gorm:"type:varchar(100)"`
	Quantity    int              `gorm:"not null;default:0;check:quantity >= 0"`
	Images      pq.StringArray   `gorm:"type:text[];not null;default:'{}'"`
	Sizes       pq.StringArray   `gorm:"type:text[];not null;default:'{}'"`
	Colors      pq.StringArray   `gorm:"type:text[];not null;default:'{}'"`
	SalesCount  int              `gorm:"not null;default:0"`
	Status      string           `gorm:"type:varchar(20);not null;default:'active'"`
	Shipping    entity.Shipping  `gorm:"type:jsonb;serializer:json"`
	Inventory   entity.Inventory `gorm:"type:jsonb;serializer:json"`
	Variants    []entity.Variant `gorm:"type:jsonb;serializer:json"`
	Metadata    entity.Metadata  `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ProductModel) TableName() string {
	return "products"
}
