package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop/config"
	apimiddleware "shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	authUC    *mockUsecase.MockAuthUsecase
	productUC *mockUsecase.MockProductUsecase
	cartUC    *mockUsecase.MockCartUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.HTTP.ClientURL = "https://shop.example.com"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := serverFixtures{
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
		cartUC:    mockUsecase.NewMockCartUsecase(t),
	}

	resetUC := mockUsecase.NewMockPasswordResetUsecase(t)

	fx.echo = NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				AuthUC: fx.authUC, ResetUC: resetUC, ProfileUC: mockUsecase.NewMockProfileUsecase(t), Config: cfg, Logger: logger,
			}),
			AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
				AuthUC: fx.authUC, ResetUC: resetUC, DashboardUC: mockUsecase.NewMockDashboardUsecase(t),
				PromotionUC: mockUsecase.NewMockPromotionUsecase(t), Config: cfg, Logger: logger,
			}),
			GoogleHandler:  handler.NewGoogleHandler(handler.GoogleHandlerParams{AuthUC: fx.authUC, Config: cfg, Logger: logger}),
			ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: fx.productUC, Logger: logger}),
			CartHandler:    handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cartUC, Logger: logger}),
			PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: mockUsecase.NewMockPaymentUsecase(t), Logger: logger}),
			OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t), Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: fx.authUC}),
		},
	})

	return fx
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestServer_PublicCatalog(t *testing.T) {
	fx := createTestServer(t)

	fx.productUC.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{}, nil).Once()

	rec := serve(fx.echo, http.MethodGet, "/api/products/all", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CartRequiresUser(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodGet, "/api/cart/get/items", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestServer_CartWithToken(t *testing.T) {
	fx := createTestServer(t)
	userID := uuid.New()

	fx.authUC.EXPECT().
		Authenticate(mock.Anything, entity.IdentityUser, "user-token").
		Return(&entity.Identity{Kind: entity.IdentityUser, ID: userID}, nil).
		Once()
	fx.cartUC.EXPECT().ListItems(mock.Anything, userID).Return([]entity.CartItem{}, nil).Once()

	rec := serve(fx.echo, http.MethodGet, "/api/cart/get/items", "user-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ProductWritesRequireAdmin(t *testing.T) {
	fx := createTestServer(t)

	fx.authUC.EXPECT().
		Authenticate(mock.Anything, entity.IdentityAdmin, "user-token").
		Return(nil, domainerrors.ErrInvalidToken).
		Once()

	rec := serve(fx.echo, http.MethodPost, "/api/products/create", "user-token", `{"newProduct":{"name":"x"}}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodGet, "/api/nope", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
