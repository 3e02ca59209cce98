// Package notification sends Firebase Cloud Messaging topic pushes.
package notification

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewNotificationService returns a Firebase topic sender, or a logging no-op when
// Firebase is not configured.
func NewNotificationService(cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	fb := cfg.Firebase
	if fb == nil || fb.CredentialsPath == "" {
		logger.Info("Firebase not configured, push notifications disabled")

		return &noopNotifier{logger: logger}, nil
	}

	ctx := context.Background()

	var appCfg *firebase.Config
	if fb.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fb.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(fb.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendTopicNotification pushes to every device subscribed to topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	id, err := s.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to send %s notification", topic)
	}

	s.logger.DebugContext(ctx, "Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", id),
	)

	return nil
}

type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) SendTopicNotification(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	n.logger.DebugContext(ctx, "Push disabled, skipping topic notification",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
