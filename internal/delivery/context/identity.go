package context

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity attaches the authenticated principal to both the echo context
// and the request's context.Context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(echoIdentityKey, identity)

	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}

// GetIdentity returns the principal set by the auth middleware.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(echoIdentityKey).(entity.Identity)

	return identity, ok
}

// WithIdentity returns a new context carrying identity.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the principal carried by ctx.
func IdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(entity.Identity)

	return identity, ok
}
