package handler

import (
	"log/slog"

	"shop/internal/delivery/api/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order history and fulfilment.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) MyOrders(c echo.Context) error {
	userID, err := ownerOf(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.orderUC.MyOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, newOrderViews(orders), "Orders retrieved successfully")
}

func (h *OrderHandler) All(c echo.Context) error {
	orders, err := h.orderUC.AllOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, newOrderViews(orders), "Orders retrieved successfully")
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return err
	}

	return response.OK(c, newOrderView(order), "Order status updated successfully")
}

func (h *OrderHandler) TotalSales(c echo.Context) error {
	total, err := h.orderUC.TotalSales(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"totalSales": total}, "Total sales retrieved successfully")
}
