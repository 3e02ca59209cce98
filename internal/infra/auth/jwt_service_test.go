package auth

import (
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL:      time.Hour,
			RememberMeTTL: 48 * time.Hour,
			OTPTTL:        5 * time.Minute,
		},
	}
	cfg.SecretKey.User = config.SecretSet{Access: "user_access_secret_for_tests", Reset: "user_reset_secret_for_tests"}
	cfg.SecretKey.Admin = config.SecretSet{Access: "admin_access_secret_for_tests", Reset: "admin_reset_secret_for_tests"}

	return cfg
}

func TestJWTService_IdentityTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identity := entity.Identity{Kind: entity.IdentityUser, ID: uuid.New(), Email: "ada@example.com"}

	token, ttl, err := svc.IssueIdentityToken(identity, false)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := svc.ParseIdentityToken(entity.IdentityUser, token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.Subject)
	assert.Equal(t, identity.Email, claims.Email)
	assert.Equal(t, entity.IdentityUser, claims.Kind)

	_, ttl, err = svc.IssueIdentityToken(identity, true)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, ttl)
}

func TestJWTService_KindsUseDisjointSecrets(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userToken, _, err := svc.IssueIdentityToken(entity.Identity{Kind: entity.IdentityUser, ID: uuid.New()}, false)
	require.NoError(t, err)

	_, err = svc.ParseIdentityToken(entity.IdentityAdmin, userToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredIdentityToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"kind": "user",
		"type": "access",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte("user_access_secret_for_tests"))
	require.NoError(t, err)

	_, err = svc.ParseIdentityToken(entity.IdentityUser, token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ParseIdentityToken(entity.IdentityUser, "not.a.token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_OTPToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.IssueOTPToken(entity.IdentityUser, service.OTPPasswordReset, service.OTPTokenInput{
		OTP:   "4821",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	claims, err := svc.ParseOTPToken(entity.IdentityUser, service.OTPPasswordReset, token)
	require.NoError(t, err)
	assert.Equal(t, "4821", claims.OTP)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.False(t, claims.Expired)

	// A reset token is not an email-change token, and a user token is not an admin token.
	_, err = svc.ParseOTPToken(entity.IdentityUser, service.OTPEmailChange, token)
	assert.Error(t, err)
	_, err = svc.ParseOTPToken(entity.IdentityAdmin, service.OTPPasswordReset, token)
	assert.Error(t, err)
}

func TestJWTService_ResetGrantToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	grant, err := svc.IssueOTPToken(entity.IdentityUser, service.OTPResetGrant, service.OTPTokenInput{Email: "ada@example.com"})
	require.NoError(t, err)

	// The grant is handed to the client, so its readable payload must not carry an OTP.
	unverified := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(grant, unverified)
	require.NoError(t, err)
	assert.NotContains(t, unverified, "otp")

	claims, err := svc.ParseOTPToken(entity.IdentityUser, service.OTPResetGrant, grant)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Empty(t, claims.OTP)

	reset, err := svc.IssueOTPToken(entity.IdentityUser, service.OTPPasswordReset, service.OTPTokenInput{OTP: "4821", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = svc.ParseOTPToken(entity.IdentityUser, service.OTPResetGrant, reset)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	_, err = svc.ParseOTPToken(entity.IdentityUser, service.OTPPasswordReset, grant)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredOTPTokenIsFlagged(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"otp":   "1111",
		"email": "ada@example.com",
		"type":  "otp:reset",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	token, err := stale.SignedString([]byte("user_reset_secret_for_tests"))
	require.NoError(t, err)

	claims, err := svc.ParseOTPToken(entity.IdentityUser, service.OTPPasswordReset, token)
	require.NoError(t, err)
	assert.True(t, claims.Expired)
	assert.Equal(t, "1111", claims.OTP)
}

func TestNewJWTService_RequiresDistinctSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Admin.Access = cfg.SecretKey.User.Access

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
