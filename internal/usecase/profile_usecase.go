package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// EmailChangeOutput is returned after the OTP has been sent to the new address.
type EmailChangeOutput struct {
	NewEmail string `json:"newEmail"`
}

// VerifyEmailChangeInput confirms the email change pending on the account.
// NewEmail is optional; when set it must match the requested address.
type VerifyEmailChangeInput struct {
	OTP      string
	NewEmail string
}

// ProfileUsecase manages a customer's own account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, fullName string) (*entity.User, error)
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) (*EmailChangeOutput, error)
	VerifyEmailChange(ctx context.Context, userID uuid.UUID, input *VerifyEmailChangeInput) (*entity.User, error)
}
