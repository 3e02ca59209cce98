package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// ResetRequestOutput is returned after an OTP has been sent. The OTP token
// itself stays on the account.
type ResetRequestOutput struct {
	Email string `json:"userEmail"`
}

// ResetVerifyInput checks the emailed OTP against the reset pending on the account.
type ResetVerifyInput struct {
	Email string
	OTP   string
}

// ResetVerifyOutput carries the grant token that authorizes one password reset.
type ResetVerifyOutput struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// ResetPasswordInput sets a new password. Token is the grant returned by VerifyReset.
type ResetPasswordInput struct {
	Token    string
	Email    string
	Password string
}

// PasswordResetUsecase runs the OTP reset flow for users and admins.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, kind entity.IdentityKind, email string) (*ResetRequestOutput, error)
	VerifyReset(ctx context.Context, kind entity.IdentityKind, input *ResetVerifyInput) (*ResetVerifyOutput, error)
	ResetPassword(ctx context.Context, kind entity.IdentityKind, input *ResetPasswordInput) error
}
