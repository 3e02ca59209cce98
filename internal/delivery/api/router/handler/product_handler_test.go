package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{
		ProductUC: productUC,
		Logger:    newDiscardLogger(),
	}), productUC
}

func TestProductHandler_Create(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	admin := adminIdentity()
	productID := uuid.New()

	productUC.EXPECT().
		CreateProduct(mock.Anything, admin.ID, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Name == "Sneaker" &&
				in.NewPrice.Equal(decimal.RequireFromString("49.99")) &&
				in.Quantity == 10 &&
				assert.ObjectsAreEqual([]string{"shoes"}, in.Categories)
		})).
		Return(&entity.Product{
			ID:         productID,
			AdminID:    admin.ID,
			Name:       "Sneaker",
			NewPrice:   decimal.RequireFromString("49.99"),
			Categories: []string{"shoes"},
			Quantity:   10,
			Status:     entity.ProductActive,
		}, nil).
		Once()

	rec := perform(t, h.Create, request{
		method: http.MethodPost,
		route:  "/api/products/create",
		body: map[string]any{
			"newProduct": map[string]any{
				"name":        "Sneaker",
				"description": "Comfortable",
				"newPrice":    "49.99",
				"oldPrice":    "59.99",
				"categories":  []string{"shoes"},
				"quantity":    10,
			},
		},
		identity: admin,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var out ProductView
	decodeData(t, rec, &out)
	assert.Equal(t, productID, out.ID)
	assert.Equal(t, admin.ID, out.AdminID)
	assert.NotNil(t, out.Images)
}

func TestProductHandler_Create_MissingPayload(t *testing.T) {
	h, _ := createTestProductHandler(t)

	rec := perform(t, h.Create, request{
		method:   http.MethodPost,
		route:    "/api/products/create",
		body:     map[string]any{"name": "Sneaker"},
		identity: adminIdentity(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h, _ := createTestProductHandler(t)

		rec := perform(t, h.Get, request{method: http.MethodGet, route: "/api/products/:id", target: "/api/products/not-a-uuid"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		id := uuid.New()

		productUC.EXPECT().
			GetProduct(mock.Anything, id).
			Return(nil, domainerrors.ErrProductNotFound).
			Once()

		rec := perform(t, h.Get, request{method: http.MethodGet, route: "/api/products/:id", target: "/api/products/" + id.String()})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), env.Error.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	h, productUC := createTestProductHandler(t)

	productUC.EXPECT().
		ListProducts(mock.Anything).
		Return([]*entity.Product{{ID: uuid.New(), Name: "A"}, {ID: uuid.New(), Name: "B"}}, nil).
		Once()

	rec := perform(t, h.List, request{method: http.MethodGet, route: "/api/products/all"})

	require.Equal(t, http.StatusOK, rec.Code)

	var out []ProductView
	decodeData(t, rec, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Name)
}

func TestProductHandler_Delete(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	id := uuid.New()

	productUC.EXPECT().DeleteProduct(mock.Anything, id).Return(nil).Once()

	rec := perform(t, h.Delete, request{
		method:   http.MethodDelete,
		route:    "/api/products/delete/:id",
		target:   "/api/products/delete/" + id.String(),
		identity: adminIdentity(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
