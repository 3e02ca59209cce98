package handler

import (
	"net/http"
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testClientURL = "https://shop.example.com"

func createTestGoogleHandler(t *testing.T) (*GoogleHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	cfg := &config.Config{}
	cfg.HTTP.ClientURL = testClientURL

	return NewGoogleHandler(GoogleHandlerParams{
		AuthUC: authUC,
		Config: cfg,
		Logger: newDiscardLogger(),
	}), authUC
}

func TestGoogleHandler_Redirect(t *testing.T) {
	h, authUC := createTestGoogleHandler(t)

	authUC.EXPECT().
		GoogleAuthURL(mock.Anything).
		Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil).
		Once()

	rec := perform(t, h.Redirect, request{method: http.MethodGet, route: "/api/google"})

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get("Location"))
}

func TestGoogleHandler_Callback(t *testing.T) {
	t.Run("consent denied", func(t *testing.T) {
		h, _ := createTestGoogleHandler(t)

		rec := perform(t, h.Callback, request{
			method: http.MethodGet,
			route:  "/api/google/callback",
			target: "/api/google/callback?error=access_denied",
		})

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, testClientURL, rec.Header().Get("Location"))
		assert.Nil(t, findCookie(rec, constants.UserAuthCookie))
	})

	t.Run("signed in", func(t *testing.T) {
		h, authUC := createTestGoogleHandler(t)

		authUC.EXPECT().
			GoogleCallback(mock.Anything, "abc", "code-1").
			Return(&usecase.LoginOutput{Token: "jwt", TTL: time.Hour}, nil).
			Once()

		rec := perform(t, h.Callback, request{
			method: http.MethodGet,
			route:  "/api/google/callback",
			target: "/api/google/callback?state=abc&code=code-1",
		})

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, testClientURL, rec.Header().Get("Location"))

		cookie := findCookie(rec, constants.UserAuthCookie)
		require.NotNil(t, cookie)
		assert.Equal(t, "jwt", cookie.Value)
	})

	t.Run("bad state", func(t *testing.T) {
		h, authUC := createTestGoogleHandler(t)

		authUC.EXPECT().
			GoogleCallback(mock.Anything, "forged", "code-1").
			Return(nil, domainerrors.ErrInvalidToken).
			Once()

		rec := perform(t, h.Callback, request{
			method: http.MethodGet,
			route:  "/api/google/callback",
			target: "/api/google/callback?state=forged&code=code-1",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGoogleHandler_TokenLogin(t *testing.T) {
	tests := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{name: "new account", created: true, wantStatus: http.StatusCreated},
		{name: "existing account", created: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := createTestGoogleHandler(t)
			user := &entity.User{ID: uuid.New(), Email: "ada@gmail.com"}

			authUC.EXPECT().
				GoogleTokenLogin(mock.Anything, "id-token").
				Return(&usecase.LoginOutput{Token: "jwt", TTL: time.Hour, User: user, Created: tt.created}, nil).
				Once()

			rec := perform(t, h.TokenLogin, request{
				method: http.MethodPost,
				route:  "/api/google/token",
				body:   map[string]any{"id_token": "id-token"},
			})

			require.Equal(t, tt.wantStatus, rec.Code)

			var out LoginResponse
			decodeData(t, rec, &out)
			require.NotNil(t, out.User)
			assert.Equal(t, user.ID, out.User.ID)
			assert.NotNil(t, findCookie(rec, constants.UserAuthCookie))
		})
	}
}
