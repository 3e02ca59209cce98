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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AuthUC      usecase.AuthUsecase
	ResetUC     usecase.PasswordResetUsecase
	DashboardUC usecase.DashboardUsecase
	PromotionUC usecase.PromotionUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// AdminHandler serves the back-office accounts and their tools.
type AdminHandler struct {
	authUC      usecase.AuthUsecase
	resetUC     usecase.PasswordResetUsecase
	dashboardUC usecase.DashboardUsecase
	promotionUC usecase.PromotionUsecase
	cookies     cookieJar
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		authUC:      params.AuthUC,
		resetUC:     params.ResetUC,
		dashboardUC: params.DashboardUC,
		promotionUC: params.PromotionUC,
		cookies:     newCookieJar(params.Config),
		logger:      params.Logger,
	}
}

type RegisterAdminRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminLoginRequest struct {
	// Username also accepts the admin's email.
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type PromotionRequest struct {
	Subject string   `json:"subject" validate:"required"`
	Text    string   `json:"text"`
	Texts   []string `json:"texts"`
}

// AdminDashboardResponse is the admin overview.
type AdminDashboardResponse struct {
	Admin *AdminView `json:"admin"`
	*entity.DashboardStats
}

// Register creates another admin. Only admins reach it.
func (h *AdminHandler) Register(c echo.Context) error {
	var req RegisterAdminRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	admin, err := h.authUC.RegisterAdmin(c.Request().Context(), &usecase.RegisterAdminInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newAdminView(admin), "Admin created successfully")
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.LoginAdmin(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return err
	}

	h.cookies.set(c, constants.AdminAuthCookie, out.Token, out.TTL)

	return response.OK(c, &LoginResponse{Token: out.Token, Admin: newAdminView(out.Admin)}, "Admin login successful")
}

func (h *AdminHandler) Logout(c echo.Context) error {
	h.cookies.clear(c, constants.AdminAuthCookie)

	return response.OK(c, nil, "Logout successful")
}

func (h *AdminHandler) ForgotPassword(c echo.Context) error {
	return forgotPassword(c, h.resetUC, entity.IdentityAdmin)
}

func (h *AdminHandler) VerifyReset(c echo.Context) error {
	return verifyReset(c, h.resetUC, entity.IdentityAdmin)
}

func (h *AdminHandler) ResetPassword(c echo.Context) error {
	return resetPassword(c, h.resetUC, entity.IdentityAdmin)
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboardUC.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, &AdminDashboardResponse{
		Admin:          &AdminView{ID: id.ID, Email: id.Email},
		DashboardStats: stats,
	}, "Admin dashboard accessed successfully")
}

// SendPromotion emails every opted-in customer and reports the counts.
func (h *AdminHandler) SendPromotion(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req PromotionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	texts := req.Texts
	if req.Text != "" {
		texts = append([]string{req.Text}, texts...)
	}

	out, err := h.promotionUC.SendPromotion(c.Request().Context(), id.ID, &usecase.PromotionInput{
		Subject: req.Subject,
		Texts:   texts,
	})
	if err != nil {
		return err
	}

	return response.OK(c, out, "Promotional emails sent")
}
