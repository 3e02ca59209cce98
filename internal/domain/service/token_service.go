package service

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// OTPPurpose selects which secret signs a one-time-password token.
type OTPPurpose string

const (
	OTPPasswordReset OTPPurpose = "reset"
	OTPEmailChange   OTPPurpose = "email"
	// OTPResetGrant marks a reset whose OTP has been checked. Its token carries no OTP.
	OTPResetGrant OTPPurpose = "reset-grant"
)

// IdentityClaims are the verified claims of a bearer token.
type IdentityClaims struct {
	Subject   uuid.UUID
	Email     string
	Kind      entity.IdentityKind
	ExpiresAt time.Time
}

// OTPClaims are the claims of an OTP token. Expired is set instead of failing
// so that callers can tell a wrong OTP from a stale one.
type OTPClaims struct {
	OTP       string
	Email     string
	NewEmail  string
	ExpiresAt time.Time
	Expired   bool
}

// OTPTokenInput carries the values embedded in a new OTP token.
type OTPTokenInput struct {
	OTP      string
	Email    string
	NewEmail string
}

// TokenService issues and verifies signed tokens. Each identity kind has its own secrets.
type TokenService interface {
	// IssueIdentityToken signs a bearer token. rememberMe selects the long TTL.
	IssueIdentityToken(identity entity.Identity, rememberMe bool) (token string, ttl time.Duration, err error)

	// ParseIdentityToken verifies signature and expiry against the secret of kind.
	ParseIdentityToken(kind entity.IdentityKind, token string) (*IdentityClaims, error)

	IssueOTPToken(kind entity.IdentityKind, purpose OTPPurpose, input OTPTokenInput) (string, error)

	// ParseOTPToken verifies the signature. An expired but authentic token returns claims with Expired set.
	ParseOTPToken(kind entity.IdentityKind, purpose OTPPurpose, token string) (*OTPClaims, error)

	OTPTTL() time.Duration
}
