package google

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// ValidateFunc validates an ID token against an audience. idtoken.Validate in production.
type ValidateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// IDTokenVerifier verifies Google ID tokens posted by clients that ran the sign-in themselves.
type IDTokenVerifier struct {
	clientID string
	validate ValidateFunc
	logger   *slog.Logger
}

// NewIDTokenVerifier checks signatures against Google's published keys.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) service.IDTokenVerifier {
	return NewIDTokenVerifierWithValidator(cfg, logger, idtoken.Validate)
}

func NewIDTokenVerifierWithValidator(cfg *config.Config, logger *slog.Logger, validate ValidateFunc) *IDTokenVerifier {
	v := &IDTokenVerifier{validate: validate, logger: logger}
	if cfg.GoogleOAuth != nil {
		v.clientID = cfg.GoogleOAuth.ClientID
	}

	return v
}

// VerifyIDToken validates signature, audience and issuer and requires a verified email.
func (v *IDTokenVerifier) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	if v.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		AvatarURL:     stringClaim(payload.Claims, "picture"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
	}
	if !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	return user, nil
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// boolClaim accepts both JSON booleans and the "true" string some tokens carry.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
