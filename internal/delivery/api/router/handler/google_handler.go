package handler

import (
	"log/slog"
	"net/http"

	"shop/config"
	"shop/internal/delivery/api/response"
	"shop/internal/domain/constants"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GoogleHandlerParams holds dependencies for GoogleHandler, injected by Fx.
type GoogleHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// GoogleHandler serves Google sign-in for customers.
type GoogleHandler struct {
	authUC    usecase.AuthUsecase
	clientURL string
	cookies   cookieJar
	logger    *slog.Logger
}

// NewGoogleHandler is the constructor for GoogleHandler.
func NewGoogleHandler(params GoogleHandlerParams) *GoogleHandler {
	return &GoogleHandler{
		authUC:    params.AuthUC,
		clientURL: params.Config.HTTP.ClientURL,
		cookies:   newCookieJar(params.Config),
		logger:    params.Logger,
	}
}

type GoogleTokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// Redirect sends the browser to the Google consent screen.
func (h *GoogleHandler) Redirect(c echo.Context) error {
	authURL, err := h.authUC.GoogleAuthURL(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// Callback finishes the consent flow, stores the token cookie and returns to the storefront.
func (h *GoogleHandler) Callback(c echo.Context) error {
	if errParam := c.QueryParam("error"); errParam != "" {
		h.logger.Warn("Google consent denied", slog.String("error", errParam))

		return c.Redirect(http.StatusTemporaryRedirect, h.clientURL)
	}

	out, err := h.authUC.GoogleCallback(c.Request().Context(), c.QueryParam("state"), c.QueryParam("code"))
	if err != nil {
		return err
	}

	h.cookies.set(c, constants.UserAuthCookie, out.Token, out.TTL)

	return c.Redirect(http.StatusTemporaryRedirect, h.clientURL)
}

// TokenLogin signs in with an ID token the client obtained from Google itself.
func (h *GoogleHandler) TokenLogin(c echo.Context) error {
	var req GoogleTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.GoogleTokenLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	h.cookies.set(c, constants.UserAuthCookie, out.Token, out.TTL)

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, &LoginResponse{Token: out.Token, User: newUserView(out.User)}, "Google sign-in successful")
}
