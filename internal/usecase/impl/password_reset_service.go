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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetAccount is the part of a user or admin the reset flow touches.
type resetAccount struct {
	name        string
	email       string
	token       string
	setToken    func(string)
	setPassword func(string)
	save        func(ctx context.Context) error
}

func userAccount(repo repository.UserRepository, user *entity.User) *resetAccount {
	return &resetAccount{
		name:        user.FirstName(),
		email:       user.Email,
		token:       user.ResetPasswordToken,
		setToken:    func(token string) { user.ResetPasswordToken = token },
		setPassword: func(hash string) { user.PasswordHash = hash },
		save:        func(ctx context.Context) error { return repo.Update(ctx, user) },
	}
}

func adminAccount(repo repository.AdminRepository, admin *entity.Admin) *resetAccount {
	return &resetAccount{
		name:        admin.FullName,
		email:       admin.Email,
		token:       admin.ResetPasswordToken,
		setToken:    func(token string) { admin.ResetPasswordToken = token },
		setPassword: func(hash string) { admin.PasswordHash = hash },
		save:        func(ctx context.Context) error { return repo.Update(ctx, admin) },
	}
}

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	emailSender  service.EmailSender
	logger       *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	EmailSender  service.EmailSender
	Logger       *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		emailSender:  params.EmailSender,
		logger:       params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findByEmail loads the account in the given repository factory scope.
func findByEmail(ctx context.Context, repos repository.RepositoryFactory, kind entity.IdentityKind, email string) (*resetAccount, error) {
	switch kind {
	case entity.IdentityUser:
		user, err := repos.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		return userAccount(repos.UserRepo(), user), nil
	case entity.IdentityAdmin:
		admin, err := repos.AdminRepo().FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		return adminAccount(repos.AdminRepo(), admin), nil
	default:
		return nil, errors.Errorf("unknown identity kind %q", kind)
	}
}

func findByResetToken(ctx context.Context, repos repository.RepositoryFactory, kind entity.IdentityKind, token string) (*resetAccount, error) {
	switch kind {
	case entity.IdentityUser:
		user, err := repos.UserRepo().FindByResetToken(ctx, token)
		if err != nil {
			return nil, err
		}

		return userAccount(repos.UserRepo(), user), nil
	case entity.IdentityAdmin:
		admin, err := repos.AdminRepo().FindByResetToken(ctx, token)
		if err != nil {
			return nil, err
		}

		return adminAccount(repos.AdminRepo(), admin), nil
	default:
		return nil, errors.Errorf("unknown identity kind %q", kind)
	}
}

func isAccountNotFound(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrAdminNotFound)
}

// RequestReset stores a fresh OTP token on the account and emails the OTP.
// A new request overwrites any outstanding token. The token never leaves the server.
func (srv *passwordResetService) RequestReset(ctx context.Context, kind entity.IdentityKind, email string) (*usecase.ResetRequestOutput, error) {
	email = normalizeEmail(email)

	otp, err := generateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	var account *resetAccount
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = findByEmail(ctx, repoFactory, kind, email)
		if findErr != nil {
			if isAccountNotFound(findErr) {
				return domainerrors.ErrEmailNotRegistered
			}

			return errors.Wrap(findErr, "failed to find account")
		}

		token, issueErr := srv.tokenService.IssueOTPToken(kind, service.OTPPasswordReset, service.OTPTokenInput{OTP: otp, Email: account.email})
		if issueErr != nil {
			return errors.Wrap(issueErr, "failed to issue reset token")
		}

		account.setToken(token)

		return errors.Wrap(account.save(ctx), "failed to store reset token")
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.String("kind", string(kind)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute reset request transaction")
	}

	if err := srv.emailSender.Send(ctx, &service.Email{
		To:       account.email,
		Subject:  "Password reset code",
		Template: service.EmailOTP,
		Data: map[string]any{
			"Name":      account.name,
			"OTP":       otp,
			"ExpiresIn": util.FormatDuration(srv.tokenService.OTPTTL()),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to send reset email")
	}

	srv.log(ctx).Info("Password reset requested", slog.String("kind", string(kind)))

	return &usecase.ResetRequestOutput{Email: account.email}, nil
}

// VerifyReset checks the OTP against the reset pending on the account and swaps
// the stored OTP token for a grant token. A wrong OTP burns the pending reset.
func (srv *passwordResetService) VerifyReset(ctx context.Context, kind entity.IdentityKind, input *usecase.ResetVerifyInput) (*usecase.ResetVerifyOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.OTP) == "" {
		return nil, domainerrors.ErrTokenOrOTPMissing
	}

	var (
		account  *resetAccount
		grant    string
		rejected error
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = findByEmail(ctx, repoFactory, kind, email)
		if findErr != nil {
			if isAccountNotFound(findErr) {
				return domainerrors.ErrEmailNotRegistered
			}

			return errors.Wrap(findErr, "failed to find account")
		}

		claims, parseErr := srv.parseToken(kind, service.OTPPasswordReset, account.token)
		if parseErr != nil {
			return parseErr
		}
		if normalizeEmail(claims.Email) != normalizeEmail(account.email) {
			return domainerrors.ErrInvalidToken
		}

		if !otpMatches(claims.OTP, input.OTP) {
			// The revocation commits; each emailed OTP allows one guess.
			rejected = domainerrors.ErrInvalidOTP
			account.setToken("")

			return errors.Wrap(account.save(ctx), "failed to revoke reset token")
		}

		var issueErr error
		grant, issueErr = srv.tokenService.IssueOTPToken(kind, service.OTPResetGrant, service.OTPTokenInput{Email: account.email})
		if issueErr != nil {
			return errors.Wrap(issueErr, "failed to issue reset grant")
		}

		account.setToken(grant)

		return errors.Wrap(account.save(ctx), "failed to store reset grant")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute reset verification transaction")
	}
	if rejected != nil {
		srv.log(ctx).Warn("Invalid reset otp", slog.String("kind", string(kind)))

		return nil, rejected
	}

	return &usecase.ResetVerifyOutput{Email: account.email, Token: grant}, nil
}

// ResetPassword overwrites the password of the account holding the grant and clears it.
// Only a grant issued by VerifyReset is accepted.
func (srv *passwordResetService) ResetPassword(ctx context.Context, kind entity.IdentityKind, input *usecase.ResetPasswordInput) error {
	if input.Token == "" {
		return domainerrors.ErrTokenOrOTPMissing
	}

	claims, err := srv.parseToken(kind, service.OTPResetGrant, input.Token)
	if err != nil {
		return err
	}

	if normalizeEmail(claims.Email) != normalizeEmail(input.Email) {
		return domainerrors.ErrInvalidToken.WithDetails("email does not match the reset request")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var account *resetAccount
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = findByResetToken(ctx, repoFactory, kind, input.Token)
		if findErr != nil {
			if isAccountNotFound(findErr) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(findErr, "failed to find account by reset grant")
		}

		account.setPassword(hash)
		account.setToken("")

		return errors.Wrap(account.save(ctx), "failed to update password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	notify(ctx, srv.emailSender, srv.log(ctx), &service.Email{
		To:       account.email,
		Subject:  "Your password was changed",
		Template: service.EmailPasswordChanged,
		Data:     map[string]any{"Name": account.name},
	})

	srv.log(ctx).Info("Password reset completed", slog.String("kind", string(kind)))

	return nil
}

// parseToken verifies a stored or presented token. An empty token means no
// reset is pending.
func (srv *passwordResetService) parseToken(kind entity.IdentityKind, purpose service.OTPPurpose, token string) (*service.OTPClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("no password reset is pending")
	}

	claims, err := srv.tokenService.ParseOTPToken(kind, purpose, token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}
	if claims.Expired {
		return nil, domainerrors.ErrTokenExpired
	}

	return claims, nil
}
