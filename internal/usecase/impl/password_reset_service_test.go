package impl

import (
	"context"
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/infra/auth"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passwordResetFixtures holds all test dependencies for password reset tests.
type passwordResetFixtures struct {
	service     usecase.PasswordResetUsecase
	txManager   *mockRepo.MockTransactionManager
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	emailSender *mockSvc.MockEmailSender
}

func createTestPasswordResetService(t *testing.T) passwordResetFixtures {
	fx := passwordResetFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokens:      mockSvc.NewMockTokenService(t),
		emailSender: mockSvc.NewMockEmailSender(t),
	}

	fx.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:    fx.txManager,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		EmailSender:  fx.emailSender,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestPasswordReset_RequestReset_UnknownEmail(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	})

	out, err := fx.service.RequestReset(ctx, entity.IdentityUser, "nobody@example.com")

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotRegistered))
}

func TestPasswordReset_RequestReset_StoresTokenAndSendsOTP(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Ada Obi", Email: "ada@example.com", ResetPasswordToken: "stale"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		userRepo.EXPECT().Update(ctx, user).Return(nil)
	})

	var otp string
	fx.tokens.EXPECT().
		IssueOTPToken(entity.IdentityUser, service.OTPPasswordReset, mock.AnythingOfType("service.OTPTokenInput")).
		RunAndReturn(func(_ entity.IdentityKind, _ service.OTPPurpose, in service.OTPTokenInput) (string, error) {
			otp = in.OTP

			return "reset-token", nil
		})
	fx.tokens.EXPECT().OTPTTL().Return(10 * time.Minute)
	fx.emailSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return e.Template == service.EmailOTP && e.To == "ada@example.com" && e.Data["OTP"] == otp
		})).
		Return(nil)

	out, err := fx.service.RequestReset(ctx, entity.IdentityUser, " ADA@example.com")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.Email)
	assert.Equal(t, "reset-token", user.ResetPasswordToken)
	assert.Len(t, otp, 4)
}

func TestPasswordReset_VerifyReset(t *testing.T) {
	ctx := context.Background()

	expectAdminByEmail := func(t *testing.T, fx passwordResetFixtures, admin *entity.Admin, saved bool) {
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			adminRepo := mockRepo.NewMockAdminRepository(t)
			factory.EXPECT().AdminRepo().Return(adminRepo)
			adminRepo.EXPECT().FindByEmail(ctx, "ops@example.com").Return(admin, nil)
			if saved {
				adminRepo.EXPECT().Update(ctx, admin).Return(nil).Once()
			}
		})
	}
	newAdmin := func() *entity.Admin {
		return &entity.Admin{ID: uuid.New(), Email: "ops@example.com", ResetPasswordToken: "reset-token"}
	}

	t.Run("valid otp swaps the stored token for a grant", func(t *testing.T) {
		fx := createTestPasswordResetService(t)
		admin := newAdmin()
		expectAdminByEmail(t, fx, admin, true)
		fx.tokens.EXPECT().ParseOTPToken(entity.IdentityAdmin, service.OTPPasswordReset, "reset-token").
			Return(&service.OTPClaims{OTP: "0421", Email: admin.Email}, nil)
		fx.tokens.EXPECT().IssueOTPToken(entity.IdentityAdmin, service.OTPResetGrant, service.OTPTokenInput{Email: admin.Email}).
			Return("grant-token", nil)

		out, err := fx.service.VerifyReset(ctx, entity.IdentityAdmin, &usecase.ResetVerifyInput{Email: "OPS@example.com", OTP: "0421"})

		require.NoError(t, err)
		assert.Equal(t, admin.Email, out.Email)
		assert.Equal(t, "grant-token", out.Token)
		assert.Equal(t, "grant-token", admin.ResetPasswordToken)
	})

	t.Run("wrong otp revokes the pending reset", func(t *testing.T) {
		fx := createTestPasswordResetService(t)
		admin := newAdmin()
		expectAdminByEmail(t, fx, admin, true)
		fx.tokens.EXPECT().ParseOTPToken(entity.IdentityAdmin, service.OTPPasswordReset, "reset-token").
			Return(&service.OTPClaims{OTP: "0421", Email: admin.Email}, nil)

		_, err := fx.service.VerifyReset(ctx, entity.IdentityAdmin, &usecase.ResetVerifyInput{Email: admin.Email, OTP: "9999"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
		assert.Empty(t, admin.ResetPasswordToken)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestPasswordResetService(t)
		admin := newAdmin()
		expectAdminByEmail(t, fx, admin, false)
		fx.tokens.EXPECT().ParseOTPToken(entity.IdentityAdmin, service.OTPPasswordReset, "reset-token").
			Return(&service.OTPClaims{OTP: "0421", Email: admin.Email, Expired: true}, nil)

		_, err := fx.service.VerifyReset(ctx, entity.IdentityAdmin, &usecase.ResetVerifyInput{Email: admin.Email, OTP: "0421"})

		assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	})

	t.Run("no reset pending", func(t *testing.T) {
		fx := createTestPasswordResetService(t)
		admin := newAdmin()
		admin.ResetPasswordToken = ""
		expectAdminByEmail(t, fx, admin, false)

		_, err := fx.service.VerifyReset(ctx, entity.IdentityAdmin, &usecase.ResetVerifyInput{Email: admin.Email, OTP: "0421"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("missing otp", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		_, err := fx.service.VerifyReset(ctx, entity.IdentityAdmin, &usecase.ResetVerifyInput{Email: "ops@example.com"})

		assert.True(t, errors.Is(err, domainerrors.ErrTokenOrOTPMissing))
	})
}

func TestPasswordReset_ResetPassword_ClearsGrant(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Ada", Email: "ada@example.com", PasswordHash: "old", ResetPasswordToken: "grant-token"}

	fx.tokens.EXPECT().ParseOTPToken(entity.IdentityUser, service.OTPResetGrant, "grant-token").
		Return(&service.OTPClaims{Email: user.Email}, nil)
	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByResetToken(ctx, "grant-token").Return(user, nil)
		userRepo.EXPECT().Update(ctx, user).Return(nil)
	})
	fx.emailSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(e *service.Email) bool { return e.Template == service.EmailPasswordChanged })).
		Return(nil)

	err := fx.service.ResetPassword(ctx, entity.IdentityUser, &usecase.ResetPasswordInput{
		Token:    "grant-token",
		Email:    "ada@example.com",
		Password: "new-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.Empty(t, user.ResetPasswordToken)
}

func TestPasswordReset_ResetPassword_EmailMismatch(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	fx.tokens.EXPECT().ParseOTPToken(entity.IdentityUser, service.OTPResetGrant, "grant-token").
		Return(&service.OTPClaims{Email: "ada@example.com"}, nil)

	err := fx.service.ResetPassword(ctx, entity.IdentityUser, &usecase.ResetPasswordInput{
		Token:    "grant-token",
		Email:    "mallory@example.com",
		Password: "x",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

// resetStore backs a reset flow with a single user record and the real token service.
type resetStore struct {
	user *entity.User
	sent []*service.Email
}

func (s *resetStore) expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			userRepo := mockRepo.NewMockUserRepository(t)
			userRepo.EXPECT().FindByEmail(mock.Anything, s.user.Email).Return(s.user, nil).Maybe()
			userRepo.EXPECT().FindByResetToken(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, token string) (*entity.User, error) {
					if token == "" || token != s.user.ResetPasswordToken {
						return nil, repository.ErrUserNotFound
					}

					return s.user, nil
				}).Maybe()
			userRepo.EXPECT().Update(mock.Anything, s.user).Return(nil).Maybe()

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo).Maybe()

			return fn(factory)
		}).Maybe()
}

func TestPasswordReset_RequiresVerifiedOTP(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{OTPTTL: 5 * time.Minute}}
	cfg.SecretKey.User = config.SecretSet{Access: "user_access_secret_for_tests"}
	cfg.SecretKey.Admin = config.SecretSet{Access: "admin_access_secret_for_tests"}
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	emailSender := mockSvc.NewMockEmailSender(t)
	svc := NewPasswordResetService(PasswordResetServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokens,
		EmailSender:  emailSender,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	store := &resetStore{user: &entity.User{ID: uuid.New(), FullName: "Ada", Email: "victim@example.com", PasswordHash: "original"}}
	store.expectTx(t, txManager)
	emailSender.EXPECT().Send(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, e *service.Email) error {
			store.sent = append(store.sent, e)

			return nil
		}).Maybe()
	hasher.EXPECT().Hash("attacker-pass").Return("attacker-hash", nil).Maybe()
	hasher.EXPECT().Hash("owner-pass").Return("owner-hash", nil).Maybe()

	_, err = svc.RequestReset(ctx, entity.IdentityUser, "victim@example.com")
	require.NoError(t, err)
	otpToken := store.user.ResetPasswordToken
	require.NotEmpty(t, otpToken)

	// The OTP token is not a reset grant.
	err = svc.ResetPassword(ctx, entity.IdentityUser, &usecase.ResetPasswordInput{
		Token:    otpToken,
		Email:    "victim@example.com",
		Password: "attacker-pass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Equal(t, "original", store.user.PasswordHash)

	// The emailed OTP yields a grant, and the grant is single use.
	require.Len(t, store.sent, 1)
	otp, _ := store.sent[0].Data["OTP"].(string)

	verified, err := svc.VerifyReset(ctx, entity.IdentityUser, &usecase.ResetVerifyInput{Email: "victim@example.com", OTP: otp})
	require.NoError(t, err)
	assert.NotEqual(t, otpToken, verified.Token)

	reset := &usecase.ResetPasswordInput{Token: verified.Token, Email: "victim@example.com", Password: "owner-pass"}
	require.NoError(t, svc.ResetPassword(ctx, entity.IdentityUser, reset))
	assert.Equal(t, "owner-hash", store.user.PasswordHash)

	err = svc.ResetPassword(ctx, entity.IdentityUser, reset)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
