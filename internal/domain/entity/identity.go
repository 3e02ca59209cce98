package entity

import "github.com/google/uuid"

// IdentityKind tags which account class an Identity belongs to.
type IdentityKind string

const (
	IdentityUser  IdentityKind = "user"
	IdentityAdmin IdentityKind = "admin"
)

// Valid reports whether the kind is one of the known classes.
func (k IdentityKind) Valid() bool {
	return k == IdentityUser || k == IdentityAdmin
}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	Kind  IdentityKind
	ID    uuid.UUID
	Email string
}

// IsAdmin reports whether the identity is an admin.
func (i Identity) IsAdmin() bool {
	return i.Kind == IdentityAdmin
}

// Owns reports whether the identity is the given customer.
func (i Identity) Owns(userID uuid.UUID) bool {
	return i.Kind == IdentityUser && i.ID == userID
}
