package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  newDiscardLogger(),
	}), orderUC
}

func TestOrderHandler_MyOrders(t *testing.T) {
	t.Run("own orders", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		id := userIdentity()

		orderUC.EXPECT().
			MyOrders(mock.Anything, id.ID).
			Return([]*entity.Order{{
				ID:     uuid.New(),
				UserID: id.ID,
				Lines:  []entity.OrderLine{{ProductID: uuid.New(), Name: "Sneaker", Quantity: 1, Price: decimal.NewFromInt(40)}},
				Total:  decimal.NewFromInt(40),
				Status: entity.OrderCompleted,
			}}, nil).
			Once()

		rec := perform(t, h.MyOrders, request{
			method:   http.MethodGet,
			route:    "/api/orders/my-orders/:userId",
			target:   "/api/orders/my-orders/" + id.ID.String(),
			identity: id,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var out []OrderView
		decodeData(t, rec, &out)
		require.Len(t, out, 1)
		require.Len(t, out[0].Lines, 1)
		assert.Equal(t, "Sneaker", out[0].Lines[0].Name)
	})

	t.Run("no orders", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		id := userIdentity()

		orderUC.EXPECT().MyOrders(mock.Anything, id.ID).Return(nil, domainerrors.ErrNoOrders).Once()

		rec := perform(t, h.MyOrders, request{
			method:   http.MethodGet,
			route:    "/api/orders/my-orders/:userId",
			target:   "/api/orders/my-orders/" + id.ID.String(),
			identity: id,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("someone else's orders", func(t *testing.T) {
		h, _ := createTestOrderHandler(t)

		rec := perform(t, h.MyOrders, request{
			method:   http.MethodGet,
			route:    "/api/orders/my-orders/:userId",
			target:   "/api/orders/my-orders/" + uuid.NewString(),
			identity: userIdentity(),
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderID := uuid.New()

		orderUC.EXPECT().
			UpdateStatus(mock.Anything, orderID, "delivered").
			Return(&entity.Order{ID: orderID, Status: entity.OrderDelivered}, nil).
			Once()

		rec := perform(t, h.UpdateStatus, request{
			method:   http.MethodPut,
			route:    "/api/orders/:orderId/update",
			target:   "/api/orders/" + orderID.String() + "/update",
			body:     map[string]any{"status": "delivered"},
			identity: adminIdentity(),
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var out OrderView
		decodeData(t, rec, &out)
		assert.Equal(t, entity.OrderDelivered, out.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderID := uuid.New()

		orderUC.EXPECT().
			UpdateStatus(mock.Anything, orderID, "lost").
			Return(nil, domainerrors.ErrInvalidOrderStatus).
			Once()

		rec := perform(t, h.UpdateStatus, request{
			method:   http.MethodPut,
			route:    "/api/orders/:orderId/update",
			target:   "/api/orders/" + orderID.String() + "/update",
			body:     map[string]any{"status": "lost"},
			identity: adminIdentity(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_TotalSales(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().TotalSales(mock.Anything).Return(decimal.RequireFromString("1234.50"), nil).Once()

	rec := perform(t, h.TotalSales, request{method: http.MethodGet, route: "/api/orders/sales/total", identity: adminIdentity()})

	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		TotalSales decimal.Decimal `json:"totalSales"`
	}
	decodeData(t, rec, &out)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(out.TotalSales))
}
