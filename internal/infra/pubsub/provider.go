// Package pubsub publishes domain events, either to Google Pub/Sub or, in
// development, straight to the worker's push endpoint.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// encodePurchase returns the message body and the routing attributes of event.
// The attributes let subscribers filter without decoding the body.
func encodePurchase(event *service.PurchaseCompletedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode purchase event")
	}

	attrs := map[string]string{
		service.AttrEventType:      service.EventPurchaseCompleted,
		service.AttrOrderID:        event.OrderID,
		service.AttrTransactionRef: event.TransactionRef,
	}
	if event.RequestID != "" {
		attrs[service.AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPurchaseCompleted(ctx context.Context, event *service.PurchaseCompletedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping purchase event",
		slog.String("transaction_ref", event.TransactionRef),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.StopHook(func() error {
		logger.Info("Closing EventPublisher")

		return publisher.Close()
	}))

	return publisher, nil
}
