package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	adminRepo   repository.AdminRepository
	assets      service.AssetStore
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	AdminRepo   repository.AdminRepository
	AssetStore  service.AssetStore
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		adminRepo:   params.AdminRepo,
		assets:      params.AssetStore,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates the input, uploads the images and stores the product.
func (srv *productService) CreateProduct(ctx context.Context, adminID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.adminRepo.FindByID(ctx, adminID); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	images, err := srv.uploadImages(ctx, input.Images, nil)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{AdminID: adminID}
	applyProductInput(product, input, images)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("adminID", adminID),
		slog.Int("images", len(images)),
	)

	return product, nil
}

// GetProduct returns one product.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns the whole catalog, newest first.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct replaces the admin-editable fields. Images already hosted on
// the product are kept as they are.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := srv.uploadImages(ctx, input.Images, product.Images)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input, images)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", id))

	return product, nil
}

// DeleteProduct removes the product from the catalog.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func (srv *productService) uploadImages(ctx context.Context, sources, hosted []string) ([]string, error) {
	urls := make([]string, 0, len(sources))
	if len(sources) == 0 {
		return urls, nil
	}

	kept := make(map[string]struct{}, len(hosted))
	for _, u := range hosted {
		kept[u] = struct{}{}
	}

	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		if _, ok := kept[source]; ok {
			urls = append(urls, source)

			continue
		}

		u, err := srv.assets.Upload(ctx, source)
		if err != nil {
			srv.log(ctx).Warn("Image upload failed", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to upload product image")
		}
		urls = append(urls, u)
	}

	return urls, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if !input.NewPrice.IsPositive() {
		missing = append(missing, "newPrice")
	}
	if input.OldPrice.IsNegative() || input.OldPrice.IsZero() {
		missing = append(missing, "oldPrice")
	}
	if len(input.Categories) == 0 {
		missing = append(missing, "categories")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing or invalid: " + strings.Join(missing, ", "))
	}

	if input.Quantity < 0 {
		return domainerrors.ErrInvalidQuantity.WithDetails("stock quantity cannot be negative")
	}
	if input.Status != "" && !input.Status.Valid() {
		return domainerrors.ErrInvalidProductStatus.WithDetails(string(input.Status))
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput, images []string) {
	status := input.Status
	if status == "" {
		status = entity.ProductActive
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.NewPrice = input.NewPrice
	product.OldPrice = input.OldPrice
	product.Discount = input.Discount
	product.Categories = input.Categories
	product.Section = input.Section
	product.Brand = input.Brand
	product.Quantity = input.Quantity
	product.Images = images
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.Status = status
	product.Shipping = input.Shipping
	product.Inventory = input.Inventory
	product.Variants = input.Variants
	product.Metadata = input.Metadata
}
