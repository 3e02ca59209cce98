package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.PromotionalEmail) error {
	promotionM := &model.PromotionalEmailModel{
		ID:         promotion.ID,
		AdminID:    promotion.AdminID,
		Subject:    promotion.Subject,
		Texts:      stringArray(promotion.Texts),
		Recipients: promotion.Recipients,
		Failed:     promotion.Failed,
	}

	if err := repo.db.WithContext(ctx).Create(promotionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record promotional email")
	}

	promotion.ID = promotionM.ID
	promotion.CreatedAt = promotionM.CreatedAt

	return nil
}
