package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentTransactionRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentTransactionRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MyOrders lists the orders of one customer, newest first.
func (srv *orderService) MyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrders
	}

	return orders, nil
}

// AllOrders lists every order, newest first.
func (srv *orderService) AllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrders.WithDetails("no orders have been placed yet")
	}

	return orders, nil
}

// UpdateStatus sets the order status and mirrors it onto the originating
// transaction when that transaction has been paid.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error) {
	next, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(status)
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		var err error
		order, err = orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if mirrored, ok := next.MirroredTransactionStatus(); ok {
			updated, err := repoFactory.PaymentRepo().SetFulfilmentStatus(ctx, order.TransactionRef, mirrored)
			if err != nil {
				return errors.Wrap(err, "failed to mirror status onto transaction")
			}
			if !updated {
				srv.log(ctx).Warn("Transaction status left unchanged",
					slog.String("reference", order.TransactionRef),
					slog.String("status", string(next)))
			}
		}

		order.Status = next

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(next)))

	return order, nil
}

// TotalSales sums the transactions counted as sales.
func (srv *orderService) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	total, err := srv.paymentRepo.SumAmount(ctx, entity.SalesStatuses, nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum sales")
	}

	return total, nil
}
