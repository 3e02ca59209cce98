package middleware

import (
	"strings"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the bearer token of a request into an Identity.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// RequireUser admits only authenticated customers.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.IdentityUser, constants.UserAuthCookie, next)
}

// RequireAdmin admits only authenticated admins.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.IdentityAdmin, constants.AdminAuthCookie, next)
}

func (m *AuthMiddleware) require(kind entity.IdentityKind, cookieName string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c, cookieName)
		if token == "" {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.authUC.Authenticate(c.Request().Context(), kind, token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, *identity)

		return next(c)
	}
}

// extractToken prefers the Authorization header and falls back to the auth cookie.
func extractToken(c echo.Context, cookieName string) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}

	return ""
}
