// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a customer account. It is created at registration or at first federated login
// and is never hard-deleted.
type User struct {
	ID                 uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	FullName           string      // Display name, used to greet the user in emails.
	Username           string      // Optional handle.
	Email              string      // Unique login identifier.
	Phone              string      // Optional, also accepted as a login identifier.
	PasswordHash       string      // Empty for accounts that only sign in through Google.
	GoogleID           string      // Federated subject id, empty for local accounts.
	Photo              string      // Avatar URL.
	IsAdmin            bool        // Legacy flag. Admin access is granted by the Admin entity only.
	Notifications      bool        // Whether the user accepts promotional emails.
	ResetPasswordToken string      // Outstanding OTP reset token. Empty when none.
	EditEmailToken     string      // Outstanding email-change token. Empty when none.
	PurchasedProducts  []uuid.UUID // Products bought across all completed purchases.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FirstName returns the first word of the full name.
func (u *User) FirstName() string {
	if fields := strings.Fields(u.FullName); len(fields) > 0 {
		return fields[0]
	}

	return u.FullName
}

// HasPassword reports whether the account can sign in with local credentials.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Identity returns the request identity for this user.
func (u *User) Identity() Identity {
	return Identity{Kind: IdentityUser, ID: u.ID, Email: u.Email}
}
