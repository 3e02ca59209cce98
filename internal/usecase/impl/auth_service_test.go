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
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	adminRepo   *mockRepo.MockAdminRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	oauth       *mockSvc.MockOAuthService
	idTokens    *mockSvc.MockIDTokenVerifier
	emailSender *mockSvc.MockEmailSender
}

func createTestAuthService(t *testing.T, cfg *config.Config) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		adminRepo:   mockRepo.NewMockAdminRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokens:      mockSvc.NewMockTokenService(t),
		oauth:       mockSvc.NewMockOAuthService(t),
		idTokens:    mockSvc.NewMockIDTokenVerifier(t),
		emailSender: mockSvc.NewMockEmailSender(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:       fx.txManager,
		UserRepo:        fx.userRepo,
		AdminRepo:       fx.adminRepo,
		Hasher:          fx.hasher,
		TokenService:    fx.tokens,
		OAuthService:    fx.oauth,
		IDTokenVerifier: fx.idTokens,
		EmailSender:     fx.emailSender,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func googleConfig() *config.Config {
	return &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-id"}}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FullName: "Ada Obi",
		Email:    " Ada@Example.com ",
		Phone:    "08030000000",
		Password: "s3cret!",
	}

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})
	fx.emailSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return e.Template == service.EmailWelcome && e.To == "ada@example.com" && e.Data["Name"] == "Ada"
		})).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "ada@example.com", Password: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_RegisterUser_WelcomeEmailFailureIgnored(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})
	fx.emailSender.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp down"))

	user, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "ada@example.com", Password: "x"})

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestAuthService_LoginUser(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.userRepo.EXPECT().FindByLogin(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("s3cret!", "hashed").Return(true)
		fx.tokens.EXPECT().IssueIdentityToken(user.Identity(), true).Return("jwt", 30*24*time.Hour, nil)

		out, err := fx.service.LoginUser(ctx, &usecase.LoginInput{Identifier: "ADA@example.com", Password: "s3cret!", RememberMe: true})

		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, user, out.User)
		assert.Equal(t, entity.IdentityUser, out.Identity.Kind)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.userRepo.EXPECT().FindByLogin(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.LoginUser(ctx, &usecase.LoginInput{Identifier: "ada@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown identifier", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.userRepo.EXPECT().FindByLogin(ctx, "08030000000").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.LoginUser(ctx, &usecase.LoginInput{Identifier: "08030000000", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("google-only account", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.userRepo.EXPECT().FindByLogin(ctx, "g@example.com").
			Return(&entity.User{ID: uuid.New(), Email: "g@example.com", GoogleID: "123"}, nil)

		_, err := fx.service.LoginUser(ctx, &usecase.LoginInput{Identifier: "g@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_RegisterAdmin_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		adminRepo := mockRepo.NewMockAdminRepository(t)
		factory.EXPECT().AdminRepo().Return(adminRepo)
		adminRepo.EXPECT().FindByEmail(ctx, "ops@example.com").Return(nil, repository.ErrAdminNotFound)
		adminRepo.EXPECT().FindByLogin(ctx, "ops").Return(&entity.Admin{Username: "ops"}, nil)
	})

	_, err := fx.service.RegisterAdmin(ctx, &usecase.RegisterAdminInput{
		FullName: "Ops",
		Username: "ops",
		Email:    "ops@example.com",
		Password: "pw",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Auth: &config.AuthConfig{BootstrapAdmin: &config.BootstrapAdminConfig{
		FullName: "Root Admin",
		Email:    "root@example.com",
		Password: "changeme",
	}}}

	t.Run("creates the first admin", func(t *testing.T) {
		fx := createTestAuthService(t, cfg)
		fx.adminRepo.EXPECT().Count(ctx).Return(0, nil)
		fx.hasher.EXPECT().Hash("changeme").Return("hashed", nil)

		var created *entity.Admin
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			adminRepo := mockRepo.NewMockAdminRepository(t)
			factory.EXPECT().AdminRepo().Return(adminRepo)
			adminRepo.EXPECT().FindByEmail(ctx, "root@example.com").Return(nil, repository.ErrAdminNotFound)
			adminRepo.EXPECT().FindByLogin(ctx, "root").Return(nil, repository.ErrAdminNotFound)
			adminRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Admin")).
				RunAndReturn(func(_ context.Context, a *entity.Admin) error {
					created = a

					return nil
				})
		})

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
		require.NotNil(t, created)
		assert.Equal(t, "root", created.Username)
	})

	t.Run("skips when admins exist", func(t *testing.T) {
		fx := createTestAuthService(t, cfg)
		fx.adminRepo.EXPECT().Count(ctx).Return(2, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("skips when not configured", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})
}

func TestAuthService_Google_NotConfigured(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.GoogleAuthURL(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))

	_, err = fx.service.GoogleTokenLogin(context.Background(), "id-token")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))
}

func TestAuthService_GoogleCallback_InvalidState(t *testing.T) {
	fx := createTestAuthService(t, googleConfig())
	fx.oauth.EXPECT().ValidateState("forged").Return(false)

	_, err := fx.service.GoogleCallback(context.Background(), "forged", "code")

	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestAuthService_GoogleCallback_CreatesUser(t *testing.T) {
	fx := createTestAuthService(t, googleConfig())

	ctx := context.Background()
	info := &service.OAuthUser{ID: "g-1", Email: "New@Example.com", Name: "New Person", EmailVerified: true}

	fx.oauth.EXPECT().ValidateState("state").Return(true)
	fx.oauth.EXPECT().ExchangeCodeForToken(ctx, "code").Return("access", nil)
	fx.oauth.EXPECT().GetUserInfo(ctx, "access").Return(info, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})
	fx.emailSender.EXPECT().Send(ctx, mock.Anything).Return(nil)
	fx.tokens.EXPECT().IssueIdentityToken(mock.AnythingOfType("entity.Identity"), true).Return("jwt", time.Hour, nil)

	out, err := fx.service.GoogleCallback(ctx, "state", "code")

	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, "g-1", out.User.GoogleID)
	assert.False(t, out.User.HasPassword())
}

func TestAuthService_GoogleTokenLogin_LinksExistingUser(t *testing.T) {
	fx := createTestAuthService(t, googleConfig())

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	fx.idTokens.EXPECT().VerifyIDToken(ctx, "id-token").
		Return(&service.OAuthUser{ID: "g-2", Email: "ada@example.com", AvatarURL: "https://img", EmailVerified: true}, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(existing, nil)
		userRepo.EXPECT().Update(ctx, existing).Return(nil)
	})
	fx.tokens.EXPECT().IssueIdentityToken(existing.Identity(), true).Return("jwt", time.Hour, nil)

	out, err := fx.service.GoogleTokenLogin(ctx, "id-token")

	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, "g-2", existing.GoogleID)
	assert.Equal(t, "https://img", existing.Photo)
}

func TestAuthService_GoogleTokenLogin_UnverifiedEmail(t *testing.T) {
	fx := createTestAuthService(t, googleConfig())

	ctx := context.Background()
	fx.idTokens.EXPECT().VerifyIDToken(ctx, "id-token").
		Return(&service.OAuthUser{ID: "g-3", Email: "x@example.com"}, nil)

	_, err := fx.service.GoogleTokenLogin(ctx, "id-token")

	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		_, err := fx.service.Authenticate(ctx, entity.IdentityUser, "")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.tokens.EXPECT().ParseIdentityToken(entity.IdentityUser, "old").Return(nil, domainerrors.ErrTokenExpired)

		_, err := fx.service.Authenticate(ctx, entity.IdentityUser, "old")

		assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	})

	t.Run("account gone", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		fx.tokens.EXPECT().ParseIdentityToken(entity.IdentityUser, "jwt").
			Return(&service.IdentityClaims{Email: "gone@example.com", Kind: entity.IdentityUser}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, entity.IdentityUser, "jwt")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("admin resolved by email", func(t *testing.T) {
		fx := createTestAuthService(t, nil)
		admin := &entity.Admin{ID: uuid.New(), Email: "ops@example.com"}
		fx.tokens.EXPECT().ParseIdentityToken(entity.IdentityAdmin, "jwt").
			Return(&service.IdentityClaims{Subject: admin.ID, Email: admin.Email, Kind: entity.IdentityAdmin}, nil)
		fx.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)

		identity, err := fx.service.Authenticate(ctx, entity.IdentityAdmin, "jwt")

		require.NoError(t, err)
		assert.True(t, identity.IsAdmin())
		assert.Equal(t, admin.ID, identity.ID)
	})
}
