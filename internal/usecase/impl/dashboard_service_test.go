package impl

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/entity"
	mockRepo "shop/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDashboardService(t *testing.T, now time.Time) (*dashboardService, *mockRepo.MockUserRepository, *mockRepo.MockPaymentTransactionRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	paymentRepo := mockRepo.NewMockPaymentTransactionRepository(t)

	srv := NewDashboardService(DashboardServiceParams{
		UserRepo:    userRepo,
		PaymentRepo: paymentRepo,
		Logger:      newDiscardLogger(),
	}).(*dashboardService)
	srv.now = func() time.Time { return now }

	return srv, userRepo, paymentRepo
}

func TestDashboardService_AdminStats(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	since := now.Add(-24 * time.Hour)
	isSince := mock.MatchedBy(func(ts *time.Time) bool { return ts != nil && ts.Equal(since) })
	var allTime *time.Time

	srv, userRepo, paymentRepo := createTestDashboardService(t, now)

	userRepo.EXPECT().Count(mock.Anything, allTime).Return(42, nil)
	userRepo.EXPECT().Count(mock.Anything, isSince).Return(3, nil)
	paymentRepo.EXPECT().Count(mock.Anything, allTime).Return(17, nil)
	paymentRepo.EXPECT().Count(mock.Anything, isSince).Return(2, nil)
	paymentRepo.EXPECT().SumAmount(mock.Anything, entity.SalesStatuses, allTime).Return(decimal.NewFromInt(90000), nil)
	paymentRepo.EXPECT().SumAmount(mock.Anything, entity.SalesStatuses, isSince).Return(decimal.NewFromInt(3000), nil)

	stats, err := srv.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.LastDayUsersRegistered)
	assert.Equal(t, int64(17), stats.TotalTransactions)
	assert.Equal(t, int64(2), stats.LastDayTransactions)
	assert.True(t, decimal.NewFromInt(90000).Equal(stats.TotalSalesAmount))
	assert.True(t, decimal.NewFromInt(3000).Equal(stats.LastDaySalesAmount))
}

func TestDashboardService_AdminStats_QueryFails(t *testing.T) {
	srv, userRepo, paymentRepo := createTestDashboardService(t, time.Now())

	userRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(0, errors.New("replica down")).Maybe()
	paymentRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(0, nil).Maybe()
	paymentRepo.EXPECT().SumAmount(mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Maybe()

	stats, err := srv.AdminStats(context.Background())

	assert.Nil(t, stats)
	assert.ErrorContains(t, err, "replica down")
}
