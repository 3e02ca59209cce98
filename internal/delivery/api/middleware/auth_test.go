package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase, *entity.Identity) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	mw := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

	seen := &entity.Identity{}
	capture := func(c echo.Context) error {
		id, ok := deliverycontext.GetIdentity(c)
		if ok {
			*seen = id
		}

		return c.NoContent(http.StatusNoContent)
	}

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.GET("/user", capture, mw.RequireUser)
	e.GET("/admin", capture, mw.RequireAdmin)

	return e, authUC, seen
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	adminID := uuid.New()

	tests := []struct {
		name       string
		path       string
		setup      func(r *http.Request)
		mock       func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantID     uuid.UUID
	}{
		{
			name:  "bearer token",
			path:  "/user",
			setup: func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer user-token") },
			mock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, entity.IdentityUser, "user-token").
					Return(&entity.Identity{Kind: entity.IdentityUser, ID: userID}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantID:     userID,
		},
		{
			name: "cookie fallback",
			path: "/admin",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constants.AdminAuthCookie, Value: "admin-token"})
			},
			mock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, entity.IdentityAdmin, "admin-token").
					Return(&entity.Identity{Kind: entity.IdentityAdmin, ID: adminID}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantID:     adminID,
		},
		{
			name: "header wins over cookie",
			path: "/user",
			setup: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
				r.AddCookie(&http.Cookie{Name: constants.UserAuthCookie, Value: "from-cookie"})
			},
			mock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, entity.IdentityUser, "from-header").
					Return(&entity.Identity{Kind: entity.IdentityUser, ID: userID}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantID:     userID,
		},
		{
			name:       "missing token",
			path:       "/user",
			setup:      func(r *http.Request) {},
			mock:       func(m *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "user cookie does not open admin routes",
			path: "/admin",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constants.UserAuthCookie, Value: "user-token"})
			},
			mock:       func(m *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "wrong kind",
			path:  "/admin",
			setup: func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer user-token") },
			mock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, entity.IdentityAdmin, "user-token").
					Return(nil, domainerrors.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC, seen := setupAuthEcho(t)
			tt.mock(authUC)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantID, seen.ID)
		})
	}
}
