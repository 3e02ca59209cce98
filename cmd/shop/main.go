package main

import (
	"context"
	"log/slog"
	"os"

	"shop/config"
	"shop/internal/delivery"
	"shop/internal/delivery/api"
	apimiddleware "shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/domain/lifecycle"
	"shop/internal/infra/auth"
	"shop/internal/infra/auth/google"
	"shop/internal/infra/gateway"
	logs "shop/internal/infra/log"
	"shop/internal/infra/mail"
	"shop/internal/infra/notification"
	"shop/internal/infra/persistence/postgres"
	"shop/internal/infra/pubsub"
	"shop/internal/infra/qrcode"
	"shop/internal/infra/reference"
	"shop/internal/infra/storage"
	"shop/internal/usecase"
	"shop/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewPaymentTransactionRepository,
			postgres.NewOrderRepository,
			postgres.NewPromotionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			google.NewIDTokenVerifier,
			gateway.NewFlutterwave,
			mail.NewEmailSender,
			storage.New,
			pubsub.NewEventPublisher,
			notification.NewNotificationService,
			qrcode.NewQRCodeService,
			reference.NewGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordResetService,
			impl.NewProfileService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewPaymentService,
			impl.NewOrderService,
			impl.NewDashboardService,
			impl.NewPromotionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAdminHandler,
			handler.NewGoogleHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewPaymentHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAdmin creates the bootstrap admin once the database hook has run.
func seedAdmin(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(authUC.EnsureBootstrapAdmin(ctx), "failed to seed bootstrap admin")
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
