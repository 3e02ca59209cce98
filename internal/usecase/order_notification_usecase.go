package usecase

import (
	"context"

	"shop/internal/domain/service"
)

// OrderNotificationUsecase fans a completed purchase out to the customer and the back office.
type OrderNotificationUsecase interface {
	NotifyPurchase(ctx context.Context, event *service.PurchaseCompletedEvent) error
}
