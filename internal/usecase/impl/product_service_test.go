package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	adminRepo   *mockRepo.MockAdminRepository
	assets      *mockSvc.MockAssetStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		adminRepo:   mockRepo.NewMockAdminRepository(t),
		assets:      mockSvc.NewMockAssetStore(t),
	}

	fx.service = NewProductService(ProductServiceParams{
		ProductRepo: fx.productRepo,
		AdminRepo:   fx.adminRepo,
		AssetStore:  fx.assets,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Runner",
		Description: "Lightweight running shoe",
		NewPrice:    decimal.NewFromInt(1000),
		OldPrice:    decimal.NewFromInt(1200),
		Categories:  []string{"shoes"},
		Quantity:    10,
	}
}

func TestProductService_CreateProduct_NoImages(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Admin{ID: adminID}, nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, adminID, validProductInput())

	require.NoError(t, err)
	assert.Empty(t, product.Images)
	assert.Equal(t, entity.ProductActive, product.Status)
	assert.Equal(t, adminID, product.AdminID)
	fx.assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_UploadsImages(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	adminID := uuid.New()
	input := validProductInput()
	input.Images = []string{"data:image/png;base64,iVBORw0KGgo=", "https://cdn.example/a.png"}

	fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Admin{ID: adminID}, nil)
	fx.assets.EXPECT().Upload(ctx, input.Images[0]).Return("http://localhost:8080/assets/1.png", nil)
	fx.assets.EXPECT().Upload(ctx, input.Images[1]).Return("http://localhost:8080/assets/2.png", nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, adminID, input)

	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:8080/assets/1.png", "http://localhost:8080/assets/2.png"}, product.Images)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.ProductInput)
		want   error
	}{
		{"missing name", func(in *usecase.ProductInput) { in.Name = " " }, domainerrors.ErrValidationFailed},
		{"zero price", func(in *usecase.ProductInput) { in.NewPrice = decimal.Zero }, domainerrors.ErrValidationFailed},
		{"no categories", func(in *usecase.ProductInput) { in.Categories = nil }, domainerrors.ErrValidationFailed},
		{"negative stock", func(in *usecase.ProductInput) { in.Quantity = -1 }, domainerrors.ErrInvalidQuantity},
		{"unknown status", func(in *usecase.ProductInput) { in.Status = "archived" }, domainerrors.ErrInvalidProductStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			input := validProductInput()
			tt.mutate(input)

			_, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestProductService_CreateProduct_UnknownAdmin(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	adminID := uuid.New()
	fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(nil, repository.ErrAdminNotFound)

	_, err := fx.service.CreateProduct(ctx, adminID, validProductInput())

	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}

func TestProductService_UpdateProduct_KeepsHostedImages(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), Images: []string{"http://localhost:8080/assets/1.png"}}
	input := validProductInput()
	input.Images = []string{"http://localhost:8080/assets/1.png"}
	input.Status = entity.ProductInactive

	fx.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Images, product.Images)
	assert.Equal(t, entity.ProductInactive, product.Status)
}

func TestProductService_GetAndDelete_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)
	fx.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	err = fx.service.DeleteProduct(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
