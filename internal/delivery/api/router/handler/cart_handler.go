package handler

import (
	"log/slog"

	"shop/internal/delivery/api/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the signed-in customer's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	// UserID is optional; when sent it must be the caller.
	UserID *uuid.UUID `json:"userId"`
}

type ReduceCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Add(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.UserID != nil && !id.Owns(*req.UserID) {
		return domainerrors.ErrForbidden
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), id.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return response.OK(c, newCartView(cart), "Item added to cart successfully")
}

func (h *CartHandler) Items(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	items, err := h.cartUC.ListItems(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}

	message := "Cart items retrieved successfully"
	if len(items) == 0 {
		message = "Cart is empty"
	}

	return response.OK(c, map[string]any{"cartItems": newCartItemViews(items)}, message)
}

// Reduce takes quantity units off a line; a missing quantity means one.
func (h *CartHandler) Reduce(c echo.Context) error {
	userID, err := ownerOf(c, "userId")
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req ReduceCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartUC.ReduceItem(c.Request().Context(), userID, productID, req.Quantity)
	if err != nil {
		return err
	}

	return response.OK(c, newCartView(cart), "Item quantity reduced successfully")
}

func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ownerOf(c, "userId")
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return err
	}

	return response.OK(c, newCartView(cart), "Item removed from cart successfully")
}
