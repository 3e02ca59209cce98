package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PromotionalEmailModel is the GORM-specific struct for the 'promotional_emails' table.
type PromotionalEmailModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Subject    string         `gorm:"type:varchar(255);not null"`
	Texts      pq.StringArray `gorm:"type:text[];not null"`
	Recipients int            `gorm:"not null;default:0"`
	Failed     int            `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (PromotionalEmailModel) TableName() string {
	return "promotional_emails"
}
