package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
		cartRepo:  cartRepo,
	}
}

func newTestProduct(stock int, price int64) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "Runner",
		NewPrice: decimal.NewFromInt(price),
		Quantity: stock,
		Status:   entity.ProductActive,
	}
}

func TestCartService_AddThenReduce_RoundTrip(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	product := newTestProduct(10, 1000)
	stored := &entity.Cart{ID: uuid.New(), UserID: user.ID}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		cartRepo.EXPECT().FindOrCreate(ctx, user.ID).Return(stored, entity.LookupCreated, nil)
		cartRepo.EXPECT().Save(ctx, stored).Return(nil)
	})

	cart, err := fx.service.AddItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(2000).Equal(cart.Items[0].Subtotal))

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		cartRepo.EXPECT().FindByUserID(ctx, user.ID, false).Return(stored, nil)
		cartRepo.EXPECT().Save(ctx, stored).Return(nil)
	})

	cart, err = fx.service.ReduceItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 10, product.Quantity, "cart operations never touch stock")
}

func TestCartService_ReduceItem_PriceRaisedSinceAdd(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	product := newTestProduct(10, 5000)
	stored := &entity.Cart{ID: uuid.New(), UserID: user.ID}
	stored.Add(product.ID, 3, decimal.NewFromInt(1000))

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		cartRepo.EXPECT().FindByUserID(ctx, user.ID, false).Return(stored, nil)
		cartRepo.EXPECT().Save(ctx, stored).Return(nil)
	})

	cart, err := fx.service.ReduceItem(ctx, user.ID, product.ID, 1)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(2000).Equal(cart.Items[0].Subtotal))
}

func TestCartService_AddItem_ExceedsStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	product := newTestProduct(3, 500)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	})

	cart, err := fx.service.AddItem(ctx, user.ID, product.ID, 4)

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrExceedsStock))
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	productID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.AddItem(ctx, user.ID, productID, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_ReduceItem_NeverAdded(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	product := newTestProduct(5, 100)
	other := uuid.New()
	stored := &entity.Cart{UserID: user.ID, Items: []entity.CartItem{{ProductID: other, Quantity: 1}}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		cartRepo.EXPECT().FindByUserID(ctx, user.ID, false).Return(stored, nil)
	})

	_, err := fx.service.ReduceItem(ctx, user.ID, product.ID, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	assert.Len(t, stored.Items, 1)
}

func TestCartService_ReduceItem_NoCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	product := newTestProduct(5, 100)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		cartRepo.EXPECT().FindByUserID(ctx, user.ID, false).Return(nil, repository.ErrCartNotFound)
	})

	_, err := fx.service.ReduceItem(ctx, user.ID, product.ID, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_ReduceItem_MoreThanInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	product := newTestProduct(5, 100)
	stored := &entity.Cart{UserID: user.ID, Items: []entity.CartItem{{ProductID: product.ID, Quantity: 1}}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		cartRepo.EXPECT().FindByUserID(ctx, user.ID, false).Return(stored, nil)
	})

	_, err := fx.service.ReduceItem(ctx, user.ID, product.ID, 2)

	assert.True(t, errors.Is(err, domainerrors.ErrExceedsCartQuantity))
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	stored := &entity.Cart{UserID: userID, Items: []entity.CartItem{{ProductID: productID, Quantity: 3}}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		cartRepo.EXPECT().FindByUserID(ctx, userID, false).Return(stored, nil)
		cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	})

	cart, err := fx.service.RemoveItem(ctx, userID, productID)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		cartRepo.EXPECT().FindByUserID(ctx, userID, false).Return(nil, repository.ErrCartNotFound)
	})

	_, err := fx.service.RemoveItem(ctx, userID, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}

func TestCartService_ListItems(t *testing.T) {
	t.Run("no cart yields empty list", func(t *testing.T) {
		fx := createTestCartService(t)

		ctx := context.Background()
		userID := uuid.New()
		fx.cartRepo.EXPECT().FindByUserID(ctx, userID, true).Return(nil, repository.ErrCartNotFound)

		items, err := fx.service.ListItems(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("items carry products", func(t *testing.T) {
		fx := createTestCartService(t)

		ctx := context.Background()
		userID := uuid.New()
		product := newTestProduct(4, 250)
		fx.cartRepo.EXPECT().FindByUserID(ctx, userID, true).Return(&entity.Cart{
			UserID: userID,
			Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 2, Product: product}},
		}, nil)

		items, err := fx.service.ListItems(ctx, userID)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, product, items[0].Product)
	})
}
