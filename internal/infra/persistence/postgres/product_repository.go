package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid admin reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a catalog constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs loads a batch of products in one round trip. Missing ids are absent from the map.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update saves every editable column. Sales count and ownership are left untouched.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "new_price", "old_price", "discount", "categories", "section", "brand",
			"quantity", "images", "sizes", "colors", "status", "shipping", "inventory", "variants", "metadata", "updated_at").
		Updates(fromProductDomain(product))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a catalog constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete soft-deletes the product so that past orders keep resolving it.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock locks the row, so concurrent buyers cannot drive quantity
// below zero. Soft-deleted products are included because the sale is already paid.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) (int, error) {
	db := repo.db.WithContext(ctx).Unscoped()

	var productM model.ProductModel
	if err := db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "quantity").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrProductNotFound
		}

		return 0, errors.Wrap(err, "failed to lock product stock")
	}

	taken := min(qty, max(productM.Quantity, 0))

	if err := db.
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":    gorm.Expr("quantity - ?", taken),
			"sales_count": gorm.Expr("sales_count + ?", qty),
		}).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to decrement stock")
	}

	return qty - taken, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		AdminID:     data.AdminID,
		Name:        data.Name,
		Description: data.Description,
		NewPrice:    data.NewPrice,
		OldPrice:    data.OldPrice,
		Discount:    data.Discount,
		Categories:  []string(data.Categories),
		Section:     data.Section,
		Brand:       data.Brand,
		Quantity:    data.Quantity,
		Images:      []string(data.Images),
		Sizes:       []string(data.Sizes),
		Colors:      []string(data.Colors),
		SalesCount:  data.SalesCount,
		Status:      entity.ProductStatus(data.Status),
		Shipping:    data.Shipping,
		Inventory:   data.Inventory,
		Variants:    data.Variants,
		Metadata:    data.Metadata,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		AdminID:     data.AdminID,
		Name:        data.Name,
		Description: data.Description,
		NewPrice:    data.NewPrice,
		OldPrice:    data.OldPrice,
		Discount:    data.Discount,
		Categories:  stringArray(data.Categories),
		Section:     data.Section,
		Brand:       data.Brand,
		Quantity:    data.Quantity,
		Images:      stringArray(data.Images),
		Sizes:       stringArray(data.Sizes),
		Colors:      stringArray(data.Colors),
		SalesCount:  data.SalesCount,
		Status:      string(data.Status),
		Shipping:    data.Shipping,
		Inventory:   data.Inventory,
		Variants:    data.Variants,
		Metadata:    data.Metadata,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// stringArray never returns nil so NOT NULL array columns get '{}'.
func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(values)
}
