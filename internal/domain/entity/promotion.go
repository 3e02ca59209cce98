package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromotionalEmail records a marketing email sent by an admin.
type PromotionalEmail struct {
	ID         uuid.UUID
	AdminID    uuid.UUID
	Subject    string
	Texts      []string
	Recipients int
	Failed     int
	CreatedAt  time.Time
}
