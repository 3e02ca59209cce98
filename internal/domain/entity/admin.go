package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account. Admins are created only by another admin
// or by the startup bootstrap.
type Admin struct {
	ID                 uuid.UUID
	FullName           string
	Username           string
	Email              string
	PasswordHash       string
	ResetPasswordToken string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Identity returns the request identity for this admin.
func (a *Admin) Identity() Identity {
	return Identity{Kind: IdentityAdmin, ID: a.ID, Email: a.Email}
}
