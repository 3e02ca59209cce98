package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PromotionInput is a marketing email.
type PromotionInput struct {
	Subject string
	Texts   []string
}

// PromotionOutput reports delivery counts.
type PromotionOutput struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// PromotionUsecase sends promotional emails to opted-in users.
type PromotionUsecase interface {
	SendPromotion(ctx context.Context, adminID uuid.UUID, input *PromotionInput) (*PromotionOutput, error)
}
