package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderNotificationService implements the OrderNotificationUsecase interface.
type orderNotificationService struct {
	emailSender service.EmailSender
	notifier    service.NotificationService
	logger      *slog.Logger
}

// OrderNotificationServiceParams holds dependencies for OrderNotificationService, injected by Fx.
type OrderNotificationServiceParams struct {
	fx.In

	EmailSender service.EmailSender
	Notifier    service.NotificationService
	Logger      *slog.Logger
}

// NewOrderNotificationService is the constructor for orderNotificationService.
func NewOrderNotificationService(params OrderNotificationServiceParams) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		emailSender: params.EmailSender,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

// NotifyPurchase emails the order confirmation and pushes a new-order alert.
// Any error is returned so the message gets redelivered.
func (srv *orderNotificationService) NotifyPurchase(ctx context.Context, event *service.PurchaseCompletedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("orderID", event.OrderID),
		slog.String("reference", event.TransactionRef),
	)

	if event.Email != "" {
		if err := srv.emailSender.Send(ctx, &service.Email{
			To:       event.Email,
			Subject:  "Your order " + event.TransactionRef + " is confirmed",
			Template: service.EmailOrderConfirmation,
			Data: map[string]any{
				"Name":      event.CustomerName,
				"Reference": event.TransactionRef,
				"Lines":     event.Lines,
				"Total":     event.Total,
				"Currency":  event.Currency,
			},
		}); err != nil {
			return errors.Wrap(err, "failed to send order confirmation")
		}
	} else {
		logger.Warn("Purchase event without customer email")
	}

	body := fmt.Sprintf("%s %s from %s", event.Currency, event.Total, event.CustomerName)
	if err := srv.notifier.SendTopicNotification(ctx, constants.TopicNewOrders, "New order", body, map[string]string{
		"order_id":        event.OrderID,
		"transaction_ref": event.TransactionRef,
	}); err != nil {
		return errors.Wrap(err, "failed to push new order notification")
	}

	logger.Info("Purchase notifications delivered")

	return nil
}
