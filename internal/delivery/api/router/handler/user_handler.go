package handler

import (
	"log/slog"

	"shop/config"
	"shop/internal/delivery/api/response"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	ResetUC   usecase.PasswordResetUsecase
	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler serves customer accounts: sign-up, sign-in, password reset and profile.
type UserHandler struct {
	authUC    usecase.AuthUsecase
	resetUC   usecase.PasswordResetUsecase
	profileUC usecase.ProfileUsecase
	cookies   cookieJar
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC:    params.AuthUC,
		resetUC:   params.ResetUC,
		profileUC: params.ProfileUC,
		cookies:   newCookieJar(params.Config),
		logger:    params.Logger,
	}
}

type RegisterUserRequest struct {
	FullName      string `json:"fullname" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Username      string `json:"username"`
	Phone         string `json:"phoneNumber"`
	Password      string `json:"password" validate:"required,min=6"`
	Notifications bool   `json:"notifications"`
}

type UserLoginRequest struct {
	// Email also accepts a phone number.
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyResetRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// ResetPasswordRequest carries the token returned by the verification step.
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Token    string `json:"token" validate:"required"`
}

type UpdateNameRequest struct {
	FullName string `json:"fullname" validate:"required"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
}

type VerifyEmailRequest struct {
	OTP      string `json:"otp" validate:"required"`
	NewEmail string `json:"newEmail"`
}

// LoginResponse is returned by every sign-in endpoint.
type LoginResponse struct {
	Token string     `json:"token"`
	User  *UserView  `json:"user,omitempty"`
	Admin *AdminView `json:"admin,omitempty"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		FullName:      req.FullName,
		Username:      req.Username,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		Notifications: req.Notifications,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newUserView(user), "User registered successfully")
}

func (h *UserHandler) Login(c echo.Context) error {
	var req UserLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.LoginUser(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return err
	}

	h.cookies.set(c, constants.UserAuthCookie, out.Token, out.TTL)

	return response.OK(c, &LoginResponse{Token: out.Token, User: newUserView(out.User)}, "User login successful")
}

func (h *UserHandler) Logout(c echo.Context) error {
	h.cookies.clear(c, constants.UserAuthCookie)

	return response.OK(c, nil, "Logout successful")
}

func (h *UserHandler) ForgotPassword(c echo.Context) error {
	return forgotPassword(c, h.resetUC, entity.IdentityUser)
}

func (h *UserHandler) VerifyReset(c echo.Context) error {
	return verifyReset(c, h.resetUC, entity.IdentityUser)
}

func (h *UserHandler) ResetPassword(c echo.Context) error {
	return resetPassword(c, h.resetUC, entity.IdentityUser)
}

// Dashboard returns the signed-in customer.
func (h *UserHandler) Dashboard(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}

	return response.OK(c, newUserView(user), "User dashboard accessed successfully")
}

func (h *UserHandler) UpdateName(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req UpdateNameRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateName(c.Request().Context(), id.ID, req.FullName)
	if err != nil {
		return err
	}

	return response.OK(c, newUserView(user), "Name updated successfully")
}

// RequestEmailChange sends an OTP to the new address.
func (h *UserHandler) RequestEmailChange(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req UpdateEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.RequestEmailChange(c.Request().Context(), id.ID, req.NewEmail)
	if err != nil {
		return err
	}

	return response.OK(c, out, "OTP sent to the new email address")
}

func (h *UserHandler) VerifyEmailChange(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req VerifyEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.VerifyEmailChange(c.Request().Context(), id.ID, &usecase.VerifyEmailChangeInput{
		OTP:      req.OTP,
		NewEmail: req.NewEmail,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newUserView(user), "Email updated successfully")
}

// The reset flow is identical for both identity kinds.

func forgotPassword(c echo.Context, resetUC usecase.PasswordResetUsecase, kind entity.IdentityKind) error {
	var req ForgotPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := resetUC.RequestReset(c.Request().Context(), kind, req.Email)
	if err != nil {
		return err
	}

	return response.OK(c, out, "Password reset OTP sent")
}

func verifyReset(c echo.Context, resetUC usecase.PasswordResetUsecase, kind entity.IdentityKind) error {
	var req VerifyResetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := resetUC.VerifyReset(c.Request().Context(), kind, &usecase.ResetVerifyInput{Email: req.Email, OTP: req.OTP})
	if err != nil {
		return err
	}

	return response.OK(c, out, "OTP verified")
}

func resetPassword(c echo.Context, resetUC usecase.PasswordResetUsecase, kind entity.IdentityKind) error {
	var req ResetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := resetUC.ResetPassword(c.Request().Context(), kind, &usecase.ResetPasswordInput{
		Token:    req.Token,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return err
	}

	return response.OK(c, nil, "Password reset successful")
}
