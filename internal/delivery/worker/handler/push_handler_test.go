package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/config"
	"shop/internal/domain/constants"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushHandlerFixtures struct {
	handler  *PushHandler
	notifier *mockUsecase.MockOrderNotificationUsecase
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)

	return pushHandlerFixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:   cfg,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			Notifier: notifier,
		}),
		notifier: notifier,
	}
}

func testEvent() *service.PurchaseCompletedEvent {
	return &service.PurchaseCompletedEvent{
		RequestID:      "req-42",
		OrderID:        "order-1",
		TransactionRef: "txn_0123456789ab_1700000000000",
		UserID:         "user-1",
		Email:          "ada@example.com",
		CustomerName:   "Ada Lovelace",
		Total:          "3000.00",
		Currency:       "NGN",
		Lines:          []service.PurchasedLine{{ProductID: "p-1", Name: "Runner", Quantity: 3, Price: "1000"}},
	}
}

func pushBody(t *testing.T, data string, attrs map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/orders-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func encodeEvent(t *testing.T, event *service.PurchaseCompletedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	attrs := map[string]string{service.AttrEventType: service.EventPurchaseCompleted}

	t.Run("notifies and acknowledges", func(t *testing.T) {
		fx := createTestPushHandler(t, &config.Config{})
		event := testEvent()

		fx.notifier.EXPECT().
			NotifyPurchase(mock.Anything, event).
			Return(nil).
			Once()

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, event), attrs), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		fx := createTestPushHandler(t, &config.Config{})

		fx.notifier.EXPECT().
			NotifyPurchase(mock.Anything, mock.Anything).
			Return(errors.New("smtp: connection refused")).
			Once()

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, testEvent()), attrs), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("client error is acknowledged", func(t *testing.T) {
		fx := createTestPushHandler(t, &config.Config{})

		fx.notifier.EXPECT().
			NotifyPurchase(mock.Anything, mock.Anything).
			Return(domainerrors.ErrValidationFailed).
			Once()

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, testEvent()), attrs), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("event without reference is dropped", func(t *testing.T) {
		fx := createTestPushHandler(t, &config.Config{})
		event := testEvent()
		event.TransactionRef = ""

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, event), attrs), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		fx := createTestPushHandler(t, &config.Config{})

		rec := doPush(fx.handler, pushBody(t, "%%%not-base64", attrs), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event type is ignored", func(t *testing.T) {
		fx := createTestPushHandler(t, &config.Config{})

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, testEvent()), map[string]string{service.AttrEventType: "cart.abandoned"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	event := testEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{service.AttrRequestID: "from-attrs"}
	assert.Equal(t, "from-attrs", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-42", extractRequestID(context.Background(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, event))
}

func TestPushHandler_VerifiesGooglePushes(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	attrs := map[string]string{service.AttrEventType: service.EventPurchaseCompleted}

	t.Run("missing token", func(t *testing.T) {
		fx := createTestPushHandler(t, cfg)

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, testEvent()), attrs), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		fx := createTestPushHandler(t, cfg)
		fx.handler.validateToken = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, testEvent()), attrs), http.Header{"Authorization": {"Bearer tok"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		fx := createTestPushHandler(t, cfg)
		fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}

		fx.notifier.EXPECT().
			NotifyPurchase(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		rec := doPush(fx.handler, pushBody(t, encodeEvent(t, testEvent()), attrs), http.Header{"Authorization": {"Bearer tok"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
