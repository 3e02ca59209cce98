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

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{
		CartUC: cartUC,
		Logger: newDiscardLogger(),
	}), cartUC
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("added", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)
		id := userIdentity()
		productID := uuid.New()

		cart := &entity.Cart{ID: uuid.New(), UserID: id.ID}
		cart.Add(productID, 2, decimal.NewFromInt(15))

		cartUC.EXPECT().
			AddItem(mock.Anything, id.ID, productID, 2).
			Return(cart, nil).
			Once()

		rec := perform(t, h.Add, request{
			method:   http.MethodPost,
			route:    "/api/cart/add-to-cart",
			body:     map[string]any{"productId": productID, "quantity": 2},
			identity: id,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var out CartView
		decodeData(t, rec, &out)
		require.Len(t, out.Items, 1)
		assert.Equal(t, 2, out.Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(30).Equal(out.Total))
	})

	t.Run("foreign user id", func(t *testing.T) {
		h, _ := createTestCartHandler(t)

		rec := perform(t, h.Add, request{
			method:   http.MethodPost,
			route:    "/api/cart/add-to-cart",
			body:     map[string]any{"productId": uuid.New(), "quantity": 1, "userId": uuid.New()},
			identity: userIdentity(),
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		h, _ := createTestCartHandler(t)

		rec := perform(t, h.Add, request{
			method:   http.MethodPost,
			route:    "/api/cart/add-to-cart",
			body:     map[string]any{"productId": uuid.New(), "quantity": 0},
			identity: userIdentity(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out of stock", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)

		cartUC.EXPECT().
			AddItem(mock.Anything, mock.Anything, mock.Anything, 5).
			Return(nil, domainerrors.ErrExceedsStock).
			Once()

		rec := perform(t, h.Add, request{
			method:   http.MethodPost,
			route:    "/api/cart/add-to-cart",
			body:     map[string]any{"productId": uuid.New(), "quantity": 5},
			identity: userIdentity(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_Items(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)
		id := userIdentity()

		cartUC.EXPECT().ListItems(mock.Anything, id.ID).Return([]entity.CartItem{}, nil).Once()

		rec := perform(t, h.Items, request{method: http.MethodGet, route: "/api/cart/get/items", identity: id})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Cart is empty", decode(t, rec).Message)

		var out struct {
			CartItems []CartItemView `json:"cartItems"`
		}
		decodeData(t, rec, &out)
		assert.NotNil(t, out.CartItems)
		assert.Empty(t, out.CartItems)
	})

	t.Run("with product", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)
		id := userIdentity()
		product := &entity.Product{ID: uuid.New(), Name: "Sneaker"}

		cartUC.EXPECT().
			ListItems(mock.Anything, id.ID).
			Return([]entity.CartItem{{ProductID: product.ID, Quantity: 1, Product: product}}, nil).
			Once()

		rec := perform(t, h.Items, request{method: http.MethodGet, route: "/api/cart/get/items", identity: id})

		var out struct {
			CartItems []CartItemView `json:"cartItems"`
		}
		decodeData(t, rec, &out)
		require.Len(t, out.CartItems, 1)
		require.NotNil(t, out.CartItems[0].Product)
		assert.Equal(t, "Sneaker", out.CartItems[0].Product.Name)
	})
}

func TestCartHandler_Reduce(t *testing.T) {
	t.Run("defaults to one", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)
		id := userIdentity()
		productID := uuid.New()

		cartUC.EXPECT().
			ReduceItem(mock.Anything, id.ID, productID, 1).
			Return(&entity.Cart{UserID: id.ID}, nil).
			Once()

		rec := perform(t, h.Reduce, request{
			method:   http.MethodPut,
			route:    "/api/cart/reduce/:userId/:productId",
			target:   "/api/cart/reduce/" + id.ID.String() + "/" + productID.String(),
			identity: id,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit quantity", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)
		id := userIdentity()
		productID := uuid.New()

		cartUC.EXPECT().
			ReduceItem(mock.Anything, id.ID, productID, 3).
			Return(&entity.Cart{UserID: id.ID}, nil).
			Once()

		rec := perform(t, h.Reduce, request{
			method:   http.MethodPut,
			route:    "/api/cart/reduce/:userId/:productId",
			target:   "/api/cart/reduce/" + id.ID.String() + "/" + productID.String(),
			body:     map[string]any{"quantity": 3},
			identity: id,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("another user's cart", func(t *testing.T) {
		h, _ := createTestCartHandler(t)

		rec := perform(t, h.Reduce, request{
			method:   http.MethodPut,
			route:    "/api/cart/reduce/:userId/:productId",
			target:   "/api/cart/reduce/" + uuid.NewString() + "/" + uuid.NewString(),
			identity: userIdentity(),
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCartHandler_Remove_NotInCart(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	id := userIdentity()
	productID := uuid.New()

	cartUC.EXPECT().
		RemoveItem(mock.Anything, id.ID, productID).
		Return(nil, domainerrors.ErrCartItemNotFound).
		Once()

	rec := perform(t, h.Remove, request{
		method:   http.MethodDelete,
		route:    "/api/cart/remove/:userId/:productId",
		target:   "/api/cart/remove/" + id.ID.String() + "/" + productID.String(),
		identity: id,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
