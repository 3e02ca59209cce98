package model

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel is the GORM-specific struct for the 'transactions' table.
type TransactionModel struct {
	ID                   uuid.UUID                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Reference            string                   `gorm:"type:varchar(64);unique;not null"`
	UserID               uuid.UUID                `gorm:"type:uuid;not null;index"`
	Amount               decimal.Decimal          `gorm:"type:numeric(12,2);not null"`
	Currency             string                   `gorm:"type:varchar(8);not null"`
	Status               string                   `gorm:"type:varchar(20);not null;default:'pending';index"`
	Lines                []entity.TransactionLine `gorm:"type:jsonb;serializer:json"`
	PaymentLink          string                   `gorm:"type:text"`
	GatewayTransactionID string                   `gorm:"type:varchar(64)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
