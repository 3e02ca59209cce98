package service

import "context"

// OAuthUser represents user information from Google.
type OAuthUser struct {
	ID            string // Google's 'sub' claim
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthService runs the server-side authorization code flow.
type OAuthService interface {
	// BuildAuthorizationURL returns the consent URL and remembers state for ValidateState.
	BuildAuthorizationURL(state string) string

	// ValidateState consumes a state issued by BuildAuthorizationURL.
	ValidateState(state string) bool

	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)
}

// IDTokenVerifier verifies Google ID tokens sent directly by a client.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
