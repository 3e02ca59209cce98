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
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem adds qty units of a product, creating the cart on first use.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*entity.Cart, error) {
	if qty <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadUser(ctx, repoFactory.UserRepo(), userID); err != nil {
			return err
		}

		product, err := loadProduct(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}

		if !product.InStock(qty) {
			return domainerrors.ErrExceedsStock
		}

		cartRepo := repoFactory.CartRepo()

		var lookup entity.Lookup
		cart, lookup, err = cartRepo.FindOrCreate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if lookup == entity.LookupCreated {
			srv.log(ctx).Debug("Cart created", slog.Any("userID", userID))
		}

		cart.Add(productID, qty, product.NewPrice)

		return errors.Wrap(cartRepo.Save(ctx, cart), "failed to save cart")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add to cart transaction")
	}

	srv.log(ctx).Debug("Item added to cart",
		slog.Any("userID", userID),
		slog.Any("productID", productID),
		slog.Int("quantity", qty),
	)

	return cart, nil
}

// ReduceItem takes qty units off an entry and drops it at zero.
func (srv *cartService) ReduceItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*entity.Cart, error) {
	if qty <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadUser(ctx, repoFactory.UserRepo(), userID); err != nil {
			return err
		}

		if _, err := loadProduct(ctx, repoFactory.ProductRepo(), productID); err != nil {
			return err
		}

		cartRepo := repoFactory.CartRepo()

		var err error
		cart, err = cartRepo.FindByUserID(ctx, userID, false)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to load cart")
		}

		if err := cart.Reduce(productID, qty); err != nil {
			return err
		}

		return errors.Wrap(cartRepo.Save(ctx, cart), "failed to save cart")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute reduce cart item transaction")
	}

	return cart, nil
}

// ListItems returns the cart lines with their products; no cart means no lines.
func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return []entity.CartItem{}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	if cart.Items == nil {
		return []entity.CartItem{}, nil
	}

	return cart.Items, nil
}

// RemoveItem drops the whole entry for a product.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var err error
		cart, err = cartRepo.FindByUserID(ctx, userID, false)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound
			}

			return errors.Wrap(err, "failed to load cart")
		}

		if err := cart.Remove(productID); err != nil {
			return err
		}

		return errors.Wrap(cartRepo.Save(ctx, cart), "failed to save cart")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute remove cart item transaction")
	}

	return cart, nil
}

func loadProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
