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
	"shop/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenService service.TokenService
	emailSender  service.EmailSender
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	EmailSender  service.EmailSender
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		emailSender:  params.EmailSender,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateName changes the display name.
func (srv *profileService) UpdateName(ctx context.Context, userID uuid.UUID, fullName string) (*entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fullname is required")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = loadUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		user.FullName = fullName

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update name")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update name transaction")
	}

	srv.log(ctx).Debug("Profile name updated", slog.Any("userID", userID))

	return user, nil
}

// RequestEmailChange emails an OTP to the new address and stores the signed token
// on the user. The token is never returned to the caller.
func (srv *profileService) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) (*usecase.EmailChangeOutput, error) {
	newEmail = normalizeEmail(newEmail)
	if newEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = loadUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if err := ensureEmailAvailable(ctx, userRepo, user, newEmail); err != nil {
			return err
		}

		token, err := srv.tokenService.IssueOTPToken(entity.IdentityUser, service.OTPEmailChange, service.OTPTokenInput{
			OTP:      otp,
			Email:    user.Email,
			NewEmail: newEmail,
		})
		if err != nil {
			return errors.Wrap(err, "failed to issue email change token")
		}

		user.EditEmailToken = token

		return errors.Wrap(userRepo.Update(ctx, user), "failed to store email change token")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute email change request transaction")
	}

	if err := srv.emailSender.Send(ctx, &service.Email{
		To:       newEmail,
		Subject:  "Confirm your new email address",
		Template: service.EmailOTP,
		Data: map[string]any{
			"Name":      user.FirstName(),
			"OTP":       otp,
			"ExpiresIn": util.FormatDuration(srv.tokenService.OTPTTL()),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to send email change otp")
	}

	return &usecase.EmailChangeOutput{NewEmail: newEmail}, nil
}

// VerifyEmailChange checks the OTP against the change pending on the account and
// switches it to the new address. A wrong OTP cancels the pending change.
func (srv *profileService) VerifyEmailChange(ctx context.Context, userID uuid.UUID, input *usecase.VerifyEmailChangeInput) (*entity.User, error) {
	if strings.TrimSpace(input.OTP) == "" {
		return nil, domainerrors.ErrTokenOrOTPMissing
	}

	var (
		user     *entity.User
		rejected error
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = loadUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		claims, err := srv.pendingChange(user)
		if err != nil {
			return err
		}

		if !otpMatches(claims.OTP, input.OTP) {
			rejected = domainerrors.ErrInvalidOTP
			user.EditEmailToken = ""

			return errors.Wrap(userRepo.Update(ctx, user), "failed to revoke email change token")
		}

		newEmail := claims.NewEmail
		if input.NewEmail != "" && normalizeEmail(input.NewEmail) != newEmail {
			return domainerrors.ErrInvalidToken.WithDetails("email does not match the change request")
		}

		if err := ensureEmailAvailable(ctx, userRepo, user, newEmail); err != nil {
			return err
		}

		user.Email = newEmail
		user.EditEmailToken = ""

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return domainerrors.ErrEmailInUse
			}

			return errors.Wrap(err, "failed to update email")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute email change transaction")
	}
	if rejected != nil {
		srv.log(ctx).Warn("Invalid email change otp", slog.Any("userID", userID))

		return nil, rejected
	}

	notify(ctx, srv.emailSender, srv.log(ctx), &service.Email{
		To:       user.Email,
		Subject:  "Your email address was changed",
		Template: service.EmailAddressChanged,
		Data:     map[string]any{"Name": user.FirstName(), "Email": user.Email},
	})

	srv.log(ctx).Info("Email changed", slog.Any("userID", user.ID))

	return user, nil
}

// pendingChange returns the claims of the email change stored on user.
func (srv *profileService) pendingChange(user *entity.User) (*service.OTPClaims, error) {
	if user.EditEmailToken == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("no email change is pending")
	}

	claims, err := srv.tokenService.ParseOTPToken(entity.IdentityUser, service.OTPEmailChange, user.EditEmailToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}
	if claims.Expired {
		return nil, domainerrors.ErrTokenExpired
	}
	if claims.NewEmail == "" || normalizeEmail(claims.Email) != normalizeEmail(user.Email) {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

func loadUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ensureEmailAvailable rejects the current address and addresses held by another account.
func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, user *entity.User, newEmail string) error {
	if newEmail == user.Email {
		return domainerrors.ErrEmailInUse.WithDetails("the new email is the same as the current one")
	}

	other, err := userRepo.FindByEmail(ctx, newEmail)
	switch {
	case err == nil && other.ID != user.ID:
		return domainerrors.ErrEmailInUse
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}
