package handler

import (
	"net/http"
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	handler     *AdminHandler
	authUC      *mockUsecase.MockAuthUsecase
	resetUC     *mockUsecase.MockPasswordResetUsecase
	dashboardUC *mockUsecase.MockDashboardUsecase
	promotionUC *mockUsecase.MockPromotionUsecase
}

func createTestAdminHandler(t *testing.T) adminHandlerFixtures {
	fx := adminHandlerFixtures{
		authUC:      mockUsecase.NewMockAuthUsecase(t),
		resetUC:     mockUsecase.NewMockPasswordResetUsecase(t),
		dashboardUC: mockUsecase.NewMockDashboardUsecase(t),
		promotionUC: mockUsecase.NewMockPromotionUsecase(t),
	}

	fx.handler = NewAdminHandler(AdminHandlerParams{
		AuthUC:      fx.authUC,
		ResetUC:     fx.resetUC,
		DashboardUC: fx.dashboardUC,
		PromotionUC: fx.promotionUC,
		Config:      &config.Config{},
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestAdminHandler_Login(t *testing.T) {
	fx := createTestAdminHandler(t)
	admin := &entity.Admin{ID: uuid.New(), Username: "root", Email: "root@example.com", PasswordHash: "$2a$hash"}

	fx.authUC.EXPECT().
		LoginAdmin(mock.Anything, &usecase.LoginInput{Identifier: "root", Password: "secret1"}).
		Return(&usecase.LoginOutput{Token: "admin-jwt", TTL: time.Hour, Identity: admin.Identity(), Admin: admin}, nil).
		Once()

	rec := perform(t, fx.handler.Login, request{
		method: http.MethodPost,
		route:  "/api/admin/login",
		body:   map[string]any{"username": "root", "password": "secret1"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")

	var out LoginResponse
	decodeData(t, rec, &out)
	require.NotNil(t, out.Admin)
	assert.Equal(t, "root", out.Admin.Username)
	assert.Nil(t, out.User)

	cookie := findCookie(rec, constants.AdminAuthCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "admin-jwt", cookie.Value)
	assert.Nil(t, findCookie(rec, constants.UserAuthCookie))
}

func TestAdminHandler_Register(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.authUC.EXPECT().
			RegisterAdmin(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrEmailAlreadyExists).
			Once()

		rec := perform(t, fx.handler.Register, request{
			method:   http.MethodPost,
			route:    "/api/admin/register",
			body:     map[string]any{"fullname": "Root", "username": "root", "email": "root@example.com", "password": "secret1"},
			identity: adminIdentity(),
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing username", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		rec := perform(t, fx.handler.Register, request{
			method:   http.MethodPost,
			route:    "/api/admin/register",
			body:     map[string]any{"fullname": "Root", "email": "root@example.com", "password": "secret1"},
			identity: adminIdentity(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_ForgotPassword_UsesAdminKind(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.resetUC.EXPECT().
		RequestReset(mock.Anything, entity.IdentityAdmin, "root@example.com").
		Return(&usecase.ResetRequestOutput{Email: "root@example.com"}, nil).
		Once()

	rec := perform(t, fx.handler.ForgotPassword, request{
		method: http.MethodPost,
		route:  "/api/admin/forgot-password",
		body:   map[string]any{"email": "root@example.com"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.ResetRequestOutput
	decodeData(t, rec, &out)
	assert.Equal(t, "root@example.com", out.Email)
}

func TestAdminHandler_Dashboard(t *testing.T) {
	fx := createTestAdminHandler(t)
	id := adminIdentity()

	fx.dashboardUC.EXPECT().
		AdminStats(mock.Anything).
		Return(&entity.DashboardStats{
			TotalUsers:        3,
			TotalTransactions: 2,
			TotalSalesAmount:  decimal.NewFromInt(250),
		}, nil).
		Once()

	rec := perform(t, fx.handler.Dashboard, request{method: http.MethodGet, route: "/api/admin/dashboard", identity: id})

	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Admin             AdminView       `json:"admin"`
		TotalUsers        int64           `json:"totalUsers"`
		TotalTransactions int64           `json:"totalTransaction"`
		TotalSalesAmount  decimal.Decimal `json:"totalSalesAmount"`
	}
	decodeData(t, rec, &out)
	assert.Equal(t, id.ID, out.Admin.ID)
	assert.Equal(t, int64(3), out.TotalUsers)
	assert.Equal(t, int64(2), out.TotalTransactions)
	assert.True(t, decimal.NewFromInt(250).Equal(out.TotalSalesAmount))
}

func TestAdminHandler_SendPromotion(t *testing.T) {
	t.Run("text is sent first", func(t *testing.T) {
		fx := createTestAdminHandler(t)
		id := adminIdentity()

		fx.promotionUC.EXPECT().
			SendPromotion(mock.Anything, id.ID, &usecase.PromotionInput{
				Subject: "Sale",
				Texts:   []string{"Intro", "Line two"},
			}).
			Return(&usecase.PromotionOutput{Sent: 4, Failed: 1}, nil).
			Once()

		rec := perform(t, fx.handler.SendPromotion, request{
			method:   http.MethodPost,
			route:    "/api/send-promotional-email",
			body:     map[string]any{"subject": "Sale", "text": "Intro", "texts": []string{"Line two"}},
			identity: id,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var out usecase.PromotionOutput
		decodeData(t, rec, &out)
		assert.Equal(t, 4, out.Sent)
		assert.Equal(t, 1, out.Failed)
	})

	t.Run("missing subject", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		rec := perform(t, fx.handler.SendPromotion, request{
			method:   http.MethodPost,
			route:    "/api/send-promotional-email",
			body:     map[string]any{"text": "Intro"},
			identity: adminIdentity(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
