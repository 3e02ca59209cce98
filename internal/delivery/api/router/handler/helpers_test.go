package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apimiddleware "shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/validator"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// request describes one call against a single registered route.
type request struct {
	method   string
	route    string
	target   string
	body     any
	identity *entity.Identity
}

// envelope mirrors the response bodies.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func withIdentity(identity entity.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, identity)

			return next(c)
		}
	}
}

func perform(t *testing.T, h echo.HandlerFunc, r request) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	var mws []echo.MiddlewareFunc
	if r.identity != nil {
		mws = append(mws, withIdentity(*r.identity))
	}
	e.Add(r.method, r.route, h, mws...)

	target := r.target
	if target == "" {
		target = r.route
	}

	var body io.Reader
	switch b := r.body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(r.method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
}

func userIdentity() *entity.Identity {
	return &entity.Identity{Kind: entity.IdentityUser, ID: uuid.New(), Email: "ada@example.com"}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{Kind: entity.IdentityAdmin, ID: uuid.New(), Email: "root@example.com"}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}
