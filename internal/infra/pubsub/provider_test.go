package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, pubsubCfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: pubsubCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("unconfigured drops events", func(t *testing.T) {
		pub, err := NewEventPublisher(newPublisherParams(t, nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, pub)
		assert.NoError(t, pub.PublishPurchaseCompleted(context.Background(), &service.PurchaseCompletedEvent{TransactionRef: "txn_a"}))
	})

	t.Run("local", func(t *testing.T) {
		pub, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, pub)
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
			Provider:  constants.PubSubProviderGoogle,
			ProjectID: "shop",
		}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.ErrorContains(t, err, "kafka")
	})
}

func TestEncodePurchase(t *testing.T) {
	data, attrs, err := encodePurchase(&service.PurchaseCompletedEvent{
		OrderID:        "order-1",
		TransactionRef: "txn_a",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "txn_a")
	assert.Equal(t, service.EventPurchaseCompleted, attrs[service.AttrEventType])
	assert.Equal(t, "order-1", attrs[service.AttrOrderID])
	_, hasRequestID := attrs[service.AttrRequestID]
	assert.False(t, hasRequestID)
}
