package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
// Items are rewritten as a whole on Save; the cart row is the unit of ownership.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID, withProducts bool) (*entity.Cart, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if withProducts {
		// Soft-deleted products still render in an existing cart.
		query = query.Preload("Items.Product", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		})
	}

	var cartM model.CartModel
	if err := query.Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// FindOrCreate inserts an empty cart unless the user already has one. The
// insert ignores a concurrent winner and the row is read back either way.
func (repo *cartRepository) FindOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, entity.Lookup, error) {
	cartM := &model.CartModel{UserID: userID}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Omit("Items").
		Create(cartM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, 0, repository.ErrUserNotFound
		}

		return nil, 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
	}

	lookup := entity.LookupFound
	if result.RowsAffected > 0 {
		lookup = entity.LookupCreated
	}

	cart, err := repo.FindByUserID(ctx, userID, false)
	if err != nil {
		return nil, 0, err
	}

	return cart, lookup, nil
}

// Save replaces the stored lines with cart.Items, preserving their order.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("cart_id = ?", cart.ID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	if items := fromCartItemsDomain(cart.ID, cart.Items); len(items) > 0 {
		if err := db.Omit("Product").Create(&items).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrProductNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart items")
		}
	}

	now := time.Now()
	result := db.Model(&model.CartModel{}).Where("id = ?", cart.ID).Update("updated_at", now)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	cart.UpdatedAt = now

	return nil
}

// DeleteByUserID removes the cart; its items go with it through the cascade.
func (repo *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Subtotal:  itemM.Subtotal,
			Product:   toProductDomain(itemM.Product),
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemsDomain(cartID uuid.UUID, items []entity.CartItem) []model.CartItemModel {
	out := make([]model.CartItemModel, 0, len(items))
	for i, item := range items {
		out = append(out, model.CartItemModel{
			CartID:    cartID,
			ProductID: item.ProductID,
			Position:  i,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	return out
}
