// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess = "access"
	tokenTypeOTP    = "otp"
)

// secretSet holds the HMAC keys of one identity kind.
type secretSet struct {
	access []byte
	otp    map[service.OTPPurpose][]byte
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secrets       map[entity.IdentityKind]secretSet
	tokenTTL      time.Duration
	rememberMeTTL time.Duration
	otpTTL        time.Duration
}

// NewJWTService is the constructor for jwtService. Reset and email-change secrets
// fall back to a purpose-scoped derivation of the access secret when unset.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	user, admin := cfg.SecretKey.User, cfg.SecretKey.Admin
	if user.Access == "" || admin.Access == "" {
		return nil, errors.New("jwt access secrets must be provided")
	}
	if user.Access == admin.Access {
		return nil, errors.New("user and admin access secrets must differ")
	}

	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	return &jwtService{
		secrets: map[entity.IdentityKind]secretSet{
			entity.IdentityUser:  newSecretSet(user),
			entity.IdentityAdmin: newSecretSet(admin),
		},
		tokenTTL:      orDefault(authCfg.TokenTTL, 24*time.Hour),
		rememberMeTTL: orDefault(authCfg.RememberMeTTL, 30*24*time.Hour),
		otpTTL:        orDefault(authCfg.OTPTTL, 10*time.Minute),
	}, nil
}

func newSecretSet(s config.SecretSet) secretSet {
	derive := func(secret string, purpose service.OTPPurpose) []byte {
		if secret != "" {
			return []byte(secret)
		}

		return []byte(s.Access + ":" + string(purpose))
	}

	return secretSet{
		access: []byte(s.Access),
		otp: map[service.OTPPurpose][]byte{
			service.OTPPasswordReset: derive(s.Reset, service.OTPPasswordReset),
			service.OTPEmailChange:   derive(s.EmailChange, service.OTPEmailChange),
			service.OTPResetGrant:    derive("", service.OTPResetGrant),
		},
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}

	return d
}

// IssueIdentityToken signs a bearer token for the identity.
func (s *jwtService) IssueIdentityToken(identity entity.Identity, rememberMe bool) (string, time.Duration, error) {
	set, ok := s.secrets[identity.Kind]
	if !ok {
		return "", 0, errors.Errorf("unknown identity kind %q", identity.Kind)
	}

	ttl := s.tokenTTL
	if rememberMe {
		ttl = s.rememberMeTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   identity.ID.String(),
		"email": identity.Email,
		"kind":  string(identity.Kind),
		"type":  tokenTypeAccess,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token, err := sign(claims, set.access)
	if err != nil {
		return "", 0, err
	}

	return token, ttl, nil
}

// ParseIdentityToken verifies an access token of the given kind.
func (s *jwtService) ParseIdentityToken(kind entity.IdentityKind, tokenString string) (*service.IdentityClaims, error) {
	set, ok := s.secrets[kind]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, err := parse(tokenString, set.access)
	if err != nil {
		return nil, tokenError(err)
	}

	if claimString(claims, "type") != tokenTypeAccess || claimString(claims, "kind") != string(kind) {
		return nil, domainerrors.ErrInvalidToken
	}

	subject, err := uuid.Parse(claimString(claims, "sub"))
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.IdentityClaims{
		Subject:   subject,
		Email:     claimString(claims, "email"),
		Kind:      kind,
		ExpiresAt: claimTime(claims),
	}, nil
}

// IssueOTPToken embeds the OTP and email(s) in a short-lived token.
func (s *jwtService) IssueOTPToken(kind entity.IdentityKind, purpose service.OTPPurpose, input service.OTPTokenInput) (string, error) {
	secret, err := s.otpSecret(kind, purpose)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": input.Email,
		"type":  tokenTypeOTP + ":" + string(purpose),
		"iat":   now.Unix(),
		"exp":   now.Add(s.otpTTL).Unix(),
	}
	if input.OTP != "" {
		claims["otp"] = input.OTP
	}
	if input.NewEmail != "" {
		claims["newEmail"] = input.NewEmail
	}

	return sign(claims, secret)
}

// ParseOTPToken returns the claims of an authentic OTP token, flagging expiry instead of failing on it.
func (s *jwtService) ParseOTPToken(kind entity.IdentityKind, purpose service.OTPPurpose, tokenString string) (*service.OTPClaims, error) {
	secret, err := s.otpSecret(kind, purpose)
	if err != nil {
		return nil, err
	}

	expired := false
	claims, err := parse(tokenString, secret)
	if err != nil {
		// jwt/v5 checks the signature before the time claims, so an expiry
		// error implies an authentic token.
		if !errors.Is(err, jwt.ErrTokenExpired) || claims == nil {
			return nil, domainerrors.ErrInvalidToken
		}
		expired = true
	}

	if claimString(claims, "type") != tokenTypeOTP+":"+string(purpose) {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.OTPClaims{
		OTP:       claimString(claims, "otp"),
		Email:     claimString(claims, "email"),
		NewEmail:  claimString(claims, "newEmail"),
		ExpiresAt: claimTime(claims),
		Expired:   expired,
	}, nil
}

func (s *jwtService) OTPTTL() time.Duration {
	return s.otpTTL
}

func (s *jwtService) otpSecret(kind entity.IdentityKind, purpose service.OTPPurpose) ([]byte, error) {
	set, ok := s.secrets[kind]
	if !ok {
		return nil, errors.Errorf("unknown identity kind %q", kind)
	}

	secret, ok := set.otp[purpose]
	if !ok {
		return nil, errors.Errorf("unknown otp purpose %q", purpose)
	}

	return secret, nil
}

func sign(claims jwt.MapClaims, secret []byte) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// parse returns the claims even when validation failed on expiry.
func parse(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return claims, err
}

func tokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return domainerrors.ErrTokenExpired
	}

	return domainerrors.ErrInvalidToken
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)

	return v
}

func claimTime(claims jwt.MapClaims) time.Time {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
