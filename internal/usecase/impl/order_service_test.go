package impl

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentTransactionRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		paymentRepo: mockRepo.NewMockPaymentTransactionRepository(t),
	}

	fx.service = NewOrderService(OrderServiceParams{
		TxManager:   fx.txManager,
		OrderRepo:   fx.orderRepo,
		PaymentRepo: fx.paymentRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestOrderService_MyOrders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("none", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

		_, err := fx.service.MyOrders(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrNoOrders))
	})

	t.Run("some", func(t *testing.T) {
		fx := createTestOrderService(t)
		orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}
		fx.orderRepo.EXPECT().FindByUserID(ctx, userID).Return(orders, nil)

		got, err := fx.service.MyOrders(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})
}

func TestOrderService_AllOrders_Empty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().List(ctx).Return([]*entity.Order{}, nil)

	_, err := fx.service.AllOrders(ctx)

	assert.True(t, errors.Is(err, domainerrors.ErrNoOrders))
}

func TestOrderService_UpdateStatus_MirrorsTransaction(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), TransactionRef: "txn_a1b2c3d4e5f6_1718000000000", Status: entity.OrderProcessing}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		paymentRepo := mockRepo.NewMockPaymentTransactionRepository(t)

		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().PaymentRepo().Return(paymentRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderDelivered).Return(nil)
		paymentRepo.EXPECT().SetFulfilmentStatus(ctx, order.TransactionRef, entity.TransactionDelivered).Return(true, nil)
	})

	updated, err := fx.service.UpdateStatus(ctx, order.ID, "delivered")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, updated.Status)
}

func TestOrderService_UpdateStatus_PendingLeavesTransaction(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), TransactionRef: "txn_a1b2c3d4e5f6_1718000000000", Status: entity.OrderProcessing}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().OrderRepo().Return(orderRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderPending).Return(nil)
	})

	updated, err := fx.service.UpdateStatus(ctx, order.ID, "pending")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, updated.Status)
}

func TestOrderService_UpdateStatus_UnpaidTransactionUntouched(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), TransactionRef: "txn_a1b2c3d4e5f6_1718000000000", Status: entity.OrderProcessing}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		paymentRepo := mockRepo.NewMockPaymentTransactionRepository(t)

		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().PaymentRepo().Return(paymentRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderCancelled).Return(nil)
		paymentRepo.EXPECT().SetFulfilmentStatus(ctx, order.TransactionRef, entity.TransactionCancelled).Return(false, nil)
	})

	updated, err := fx.service.UpdateStatus(ctx, order.ID, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, updated.Status)
}

func TestOrderStatus_MirroredTransactionStatus(t *testing.T) {
	tests := []struct {
		status entity.OrderStatus
		want   entity.TransactionStatus
		ok     bool
	}{
		{entity.OrderPending, "", false},
		{entity.OrderCompleted, entity.TransactionCompleted, true},
		{entity.OrderProcessing, entity.TransactionProcessing, true},
		{entity.OrderDelivered, entity.TransactionDelivered, true},
		{entity.OrderCancelled, entity.TransactionCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, ok := tt.status.MirroredTransactionStatus()

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), "shipped")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	_, err := fx.service.UpdateStatus(ctx, orderID, "cancelled")

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_TotalSales(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	var noSince *time.Time
	fx.paymentRepo.EXPECT().SumAmount(ctx, entity.SalesStatuses, noSince).Return(decimal.NewFromInt(3000), nil)

	total, err := fx.service.TotalSales(ctx)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000).Equal(total))
}
