package usecase

import (
	"context"
	"time"

	"shop/internal/domain/entity"
)

// RegisterUserInput is the customer sign-up form.
type RegisterUserInput struct {
	FullName      string
	Username      string
	Email         string
	Phone         string
	Password      string
	Notifications bool
}

// RegisterAdminInput is the admin creation form.
type RegisterAdminInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// LoginInput is a local credential login. Identifier is an email, phone or username
// depending on the identity kind.
type LoginInput struct {
	Identifier string
	Password   string
	RememberMe bool
}

// LoginOutput carries the issued bearer token and the signed-in account.
type LoginOutput struct {
	Token    string
	TTL      time.Duration
	Identity entity.Identity
	User     *entity.User  // Set for customer logins.
	Admin    *entity.Admin // Set for admin logins.
	Created  bool          // True when a federated login created the account.
}

// AuthUsecase defines authentication use cases for both identity kinds.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	LoginUser(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*entity.Admin, error)
	LoginAdmin(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// EnsureBootstrapAdmin creates the configured first admin when no admin exists.
	EnsureBootstrapAdmin(ctx context.Context) error

	// GoogleAuthURL starts the redirect sign-in flow.
	GoogleAuthURL(ctx context.Context) (string, error)
	// GoogleCallback finishes the redirect flow with the returned state and code.
	GoogleCallback(ctx context.Context, state, code string) (*LoginOutput, error)
	// GoogleTokenLogin signs in with a Google ID token obtained by the client.
	GoogleTokenLogin(ctx context.Context, idToken string) (*LoginOutput, error)

	// Authenticate verifies a bearer token and re-resolves the account by its email claim.
	Authenticate(ctx context.Context, kind entity.IdentityKind, token string) (*entity.Identity, error)
}
