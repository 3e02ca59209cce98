package impl

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const dashboardWindow = 24 * time.Hour

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentTransactionRepository
	now         func() time.Time
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PaymentRepo repository.PaymentTransactionRepository
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:    params.UserRepo,
		paymentRepo: params.PaymentRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// AdminStats runs the overview queries concurrently against the read replicas.
func (srv *dashboardService) AdminStats(ctx context.Context) (*entity.DashboardStats, error) {
	since := srv.now().Add(-dashboardWindow)
	stats := &entity.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalUsers, err = srv.userRepo.Count(gctx, nil)

		return errors.Wrap(err, "count users")
	})
	g.Go(func() (err error) {
		stats.LastDayUsersRegistered, err = srv.userRepo.Count(gctx, &since)

		return errors.Wrap(err, "count new users")
	})
	g.Go(func() (err error) {
		stats.TotalTransactions, err = srv.paymentRepo.Count(gctx, nil)

		return errors.Wrap(err, "count transactions")
	})
	g.Go(func() (err error) {
		stats.LastDayTransactions, err = srv.paymentRepo.Count(gctx, &since)

		return errors.Wrap(err, "count new transactions")
	})
	g.Go(func() (err error) {
		stats.TotalSalesAmount, err = srv.paymentRepo.SumAmount(gctx, entity.SalesStatuses, nil)

		return errors.Wrap(err, "sum sales")
	})
	g.Go(func() (err error) {
		stats.LastDaySalesAmount, err = srv.paymentRepo.SumAmount(gctx, entity.SalesStatuses, &since)

		return errors.Wrap(err, "sum recent sales")
	})

	if err := g.Wait(); err != nil {
		srv.logger.ErrorContext(ctx, "Dashboard query failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute dashboard")
	}

	return stats, nil
}
