// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"
	"time"

	"shop/config"
	"shop/internal/delivery/api/response"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// identity returns the principal set by the auth middleware.
func identity(c echo.Context) (entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthenticated
	}

	return id, nil
}

// ownerOf requires the authenticated user to be the customer named by the path param.
func ownerOf(c echo.Context, param string) (uuid.UUID, error) {
	id, err := identity(c)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuidParam(c, param)
	if err != nil {
		return uuid.Nil, err
	}
	if !id.Owns(userID) {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return userID, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// cookieJar sets and clears the HTTP-only auth cookies.
type cookieJar struct {
	secure bool
}

func newCookieJar(cfg *config.Config) cookieJar {
	return cookieJar{secure: cfg.HTTP.CookieSecure}
}

func (j cookieJar) set(c echo.Context, name, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (j cookieJar) clear(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
