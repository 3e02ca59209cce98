package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	adminRepo     repository.AdminRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	oauthService  service.OAuthService
	idTokens      service.IDTokenVerifier
	emailSender   service.EmailSender
	googleEnabled bool
	bootstrap     *config.BootstrapAdminConfig
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	AdminRepo       repository.AdminRepository
	Hasher          service.PasswordHasher
	TokenService    service.TokenService
	OAuthService    service.OAuthService
	IDTokenVerifier service.IDTokenVerifier
	EmailSender     service.EmailSender
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		idTokens:     params.IDTokenVerifier,
		emailSender:  params.EmailSender,
		logger:       params.Logger,
	}

	if params.Config != nil {
		if g := params.Config.GoogleOAuth; g != nil && g.ClientID != "" {
			srv.googleEnabled = true
		}
		if params.Config.Auth != nil {
			srv.bootstrap = params.Config.Auth.BootstrapAdmin
		}
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a customer account and sends the welcome email.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	// Hash before opening the transaction.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		FullName:      strings.TrimSpace(input.FullName),
		Username:      strings.TrimSpace(input.Username),
		Email:         email,
		Phone:         strings.TrimSpace(input.Phone),
		PasswordHash:  hash,
		Notifications: input.Notifications,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrEmailAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return errors.Wrap(domainerrors.ErrConflict, err.Error())
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	notify(ctx, srv.emailSender, srv.log(ctx), &service.Email{
		To:       user.Email,
		Subject:  "Welcome to the store",
		Template: service.EmailWelcome,
		Data:     map[string]any{"Name": user.FirstName()},
	})

	srv.log(ctx).Debug("User registered", slog.Any("userID", user.ID))

	return user, nil
}

// LoginUser signs a customer in by email or phone.
func (srv *authService) LoginUser(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if strings.Contains(identifier, "@") {
		identifier = normalizeEmail(identifier)
	}

	user, err := srv.userRepo.FindByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown identifier")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	out, err := srv.issue(user.Identity(), input.RememberMe)
	if err != nil {
		return nil, err
	}
	out.User = user

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return out, nil
}

// RegisterAdmin creates an admin account. The caller must already be an admin.
func (srv *authService) RegisterAdmin(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.Admin, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Admin{
		FullName:     strings.TrimSpace(input.FullName),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createAdmin(ctx, repoFactory.AdminRepo(), admin)
	})
	if err != nil {
		srv.log(ctx).Warn("Admin registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin registration transaction")
	}

	srv.log(ctx).Info("Admin registered", slog.Any("adminID", admin.ID))

	return admin, nil
}

func createAdmin(ctx context.Context, adminRepo repository.AdminRepository, admin *entity.Admin) error {
	if _, err := adminRepo.FindByEmail(ctx, admin.Email); err == nil {
		return domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check existing admin email")
	}

	if existing, err := adminRepo.FindByLogin(ctx, admin.Username); err == nil && existing.Username == admin.Username {
		return domainerrors.ErrUsernameAlreadyExists
	} else if err != nil && !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check existing username")
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAdminConflict) {
			return errors.Wrap(domainerrors.ErrConflict, err.Error())
		}

		return errors.Wrap(err, "failed to create admin")
	}

	return nil
}

// LoginAdmin signs an admin in by email or username.
func (srv *authService) LoginAdmin(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if strings.Contains(identifier, "@") {
		identifier = normalizeEmail(identifier)
	}

	admin, err := srv.adminRepo.FindByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Admin login failed, unknown identifier")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed, password mismatch", slog.Any("adminID", admin.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	out, err := srv.issue(admin.Identity(), input.RememberMe)
	if err != nil {
		return nil, err
	}
	out.Admin = admin

	return out, nil
}

// EnsureBootstrapAdmin seeds the configured admin when the admins table is empty.
func (srv *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	cfg := srv.bootstrap
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		srv.logger.Debug("No bootstrap admin configured")

		return nil
	}

	count, err := srv.adminRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count admins")
	}
	if count > 0 {
		return nil
	}

	username := cfg.Username
	if username == "" {
		username = strings.SplitN(cfg.Email, "@", 2)[0]
	}

	_, err = srv.RegisterAdmin(ctx, &usecase.RegisterAdminInput{
		FullName: cfg.FullName,
		Username: username,
		Email:    cfg.Email,
		Password: cfg.Password,
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed bootstrap admin")
	}

	srv.logger.Info("Bootstrap admin created", slog.String("email", normalizeEmail(cfg.Email)))

	return nil
}

// GoogleAuthURL returns the Google consent URL with a fresh state.
func (srv *authService) GoogleAuthURL(_ context.Context) (string, error) {
	if !srv.googleEnabled {
		return "", domainerrors.ErrOAuthNotConfigured
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return srv.oauthService.BuildAuthorizationURL(hex.EncodeToString(buf)), nil
}

// GoogleCallback finishes the redirect flow.
func (srv *authService) GoogleCallback(ctx context.Context, state, code string) (*usecase.LoginOutput, error) {
	if !srv.googleEnabled {
		return nil, domainerrors.ErrOAuthNotConfigured
	}
	if state == "" || !srv.oauthService.ValidateState(state) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}
	if code == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("missing authorization code")
	}

	accessToken, err := srv.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	info, err := srv.oauthService.GetUserInfo(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Google userinfo failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return srv.federatedLogin(ctx, info)
}

// GoogleTokenLogin signs in with an ID token obtained by the client.
func (srv *authService) GoogleTokenLogin(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	if !srv.googleEnabled {
		return nil, domainerrors.ErrOAuthNotConfigured
	}

	info, err := srv.idTokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return srv.federatedLogin(ctx, info)
}

// federatedLogin finds the user by email, linking the Google id on first sight,
// or creates the account. No password is checked.
func (srv *authService) federatedLogin(ctx context.Context, info *service.OAuthUser) (*usecase.LoginOutput, error) {
	if info.Email == "" || !info.EmailVerified {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google account email is not verified")
	}

	email := normalizeEmail(info.Email)

	var (
		user    *entity.User
		created bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			user = existing
			if user.GoogleID == "" {
				user.GoogleID = info.ID
				if user.Photo == "" {
					user.Photo = info.AvatarURL
				}
				if err := userRepo.Update(ctx, user); err != nil {
					return errors.Wrap(err, "failed to link google account")
				}
			}

			return nil

		case errors.Is(err, repository.ErrUserNotFound):
			user = &entity.User{
				FullName: info.Name,
				Email:    email,
				GoogleID: info.ID,
				Photo:    info.AvatarURL,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create google user")
			}
			created = true

			return nil

		default:
			return errors.Wrap(err, "failed to find user by email")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute google login transaction")
	}

	if created {
		notify(ctx, srv.emailSender, srv.log(ctx), &service.Email{
			To:       user.Email,
			Subject:  "Welcome to the store",
			Template: service.EmailWelcome,
			Data:     map[string]any{"Name": user.FirstName()},
		})
	}

	out, err := srv.issue(user.Identity(), true)
	if err != nil {
		return nil, err
	}
	out.User = user
	out.Created = created

	srv.log(ctx).Debug("Google login", slog.Any("userID", user.ID), slog.Bool("created", created))

	return out, nil
}

func (srv *authService) issue(identity entity.Identity, rememberMe bool) (*usecase.LoginOutput, error) {
	token, ttl, err := srv.tokenService.IssueIdentityToken(identity, rememberMe)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{Token: token, TTL: ttl, Identity: identity}, nil
}

// Authenticate verifies the token and resolves the account again by its email claim.
func (srv *authService) Authenticate(ctx context.Context, kind entity.IdentityKind, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ParseIdentityToken(kind, token)
	if err != nil {
		return nil, err
	}

	var identity entity.Identity

	switch kind {
	case entity.IdentityUser:
		user, err := srv.userRepo.FindByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUnauthenticated
			}

			return nil, errors.Wrap(err, "failed to resolve user")
		}
		identity = user.Identity()

	case entity.IdentityAdmin:
		admin, err := srv.adminRepo.FindByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return nil, domainerrors.ErrUnauthenticated
			}

			return nil, errors.Wrap(err, "failed to resolve admin")
		}
		identity = admin.Identity()

	default:
		return nil, domainerrors.ErrInvalidToken
	}

	return &identity, nil
}
