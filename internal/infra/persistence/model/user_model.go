package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName           string         `gorm:"type:varchar(150);not null"`
	Username           *string        `gorm:"type:varchar(100);unique"`
	Email              string         `gorm:"type:varchar(255);unique;not null"`
	Phone              string         `gorm:"type:varchar(50);index"`
	PasswordHash       string         `gorm:"type:text"`
	GoogleID           *string        `gorm:"type:varchar(255);unique"`
	Photo              string         `gorm:"type:text"`
	IsAdmin            bool           `gorm:"not null;default:false"`
	Notifications      bool           `gorm:"not null;default:true"`
	ResetPasswordToken *string        `gorm:"type:text;index"`
	EditEmailToken     *string        `gorm:"type:text"`
	PurchasedProducts  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName           string    `gorm:"type:varchar(150);not null"`
	Username           string    `gorm:"type:varchar(100);unique;not null"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string    `gorm:"type:text;not null"`
	ResetPasswordToken *string   `gorm:"type:text;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (AdminModel) TableName() string {
	return "admins"
}
