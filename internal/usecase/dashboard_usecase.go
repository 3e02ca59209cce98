package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// DashboardUsecase computes the admin overview.
type DashboardUsecase interface {
	AdminStats(ctx context.Context) (*entity.DashboardStats, error)
}
