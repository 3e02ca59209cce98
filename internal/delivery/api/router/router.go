// Package router registers the storefront API routes.
package router

import (
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	GoogleHandler  *handler.GoogleHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	PaymentHandler *handler.PaymentHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	user    *handler.UserHandler
	admin   *handler.AdminHandler
	google  *handler.GoogleHandler
	product *handler.ProductHandler
	cart    *handler.CartHandler
	payment *handler.PaymentHandler
	order   *handler.OrderHandler
	auth    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		user:    params.UserHandler,
		admin:   params.AdminHandler,
		google:  params.GoogleHandler,
		product: params.ProductHandler,
		cart:    params.CartHandler,
		payment: params.PaymentHandler,
		order:   params.OrderHandler,
		auth:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	requireUser := r.auth.RequireUser
	requireAdmin := r.auth.RequireAdmin

	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.user.Register)
		userGroup.POST("/login", r.user.Login)
		userGroup.POST("/logout", r.user.Logout)
		userGroup.POST("/forgot_password", r.user.ForgotPassword)
		userGroup.POST("/reset_password/verification", r.user.VerifyReset)
		userGroup.POST("/reset_password", r.user.ResetPassword)

		userGroup.GET("/dashboard", r.user.Dashboard, requireUser)
		userGroup.POST("/profile/update/name", r.user.UpdateName, requireUser)
		userGroup.POST("/profile/update/email", r.user.RequestEmailChange, requireUser)
		userGroup.POST("/profile/verify/email", r.user.VerifyEmailChange, requireUser)
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/login", r.admin.Login)
		adminGroup.POST("/logout", r.admin.Logout)
		adminGroup.POST("/forgot-password", r.admin.ForgotPassword)
		adminGroup.POST("/reset_password/verification", r.admin.VerifyReset)
		adminGroup.POST("/reset_password", r.admin.ResetPassword)

		adminGroup.POST("/register", r.admin.Register, requireAdmin)
		adminGroup.GET("/dashboard", r.admin.Dashboard, requireAdmin)
	}
	api.POST("/send-promotional-email", r.admin.SendPromotion, requireAdmin)

	googleGroup := api.Group("/google")
	{
		googleGroup.GET("", r.google.Redirect)
		googleGroup.GET("/callback", r.google.Callback)
		googleGroup.POST("/token", r.google.TokenLogin)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("/all", r.product.List)
		productGroup.GET("/:id", r.product.Get)
		productGroup.POST("/create", r.product.Create, requireAdmin)
		productGroup.PUT("/update/:id", r.product.Update, requireAdmin)
		productGroup.DELETE("/delete/:id", r.product.Delete, requireAdmin)

		productGroup.POST("/create-checkout-session", r.payment.Initiate, requireUser)
		productGroup.POST("/verify-transaction", r.payment.Verify, requireUser)
		productGroup.GET("/checkout/:ref/qrcode", r.payment.QRCode, requireUser)
	}

	cartGroup := api.Group("/cart", requireUser)
	{
		cartGroup.POST("/add-to-cart", r.cart.Add)
		cartGroup.GET("/get/items", r.cart.Items)
		cartGroup.PUT("/reduce/:userId/:productId", r.cart.Reduce)
		cartGroup.DELETE("/remove/:userId/:productId", r.cart.Remove)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("/my-orders/:userId", r.order.MyOrders, requireUser)
		orderGroup.GET("/all", r.order.All, requireAdmin)
		orderGroup.PUT("/:orderId/update", r.order.UpdateStatus, requireAdmin)
		orderGroup.GET("/sales/total", r.order.TotalSales, requireAdmin)
	}
}
