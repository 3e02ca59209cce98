package repository

import (
	"context"

	"shop/internal/domain/entity"
)

// PromotionRepository records promotional email campaigns.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.PromotionalEmail) error
}
