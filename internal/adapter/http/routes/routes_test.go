package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealflow/internal/adapter/http/handlers"
	"dealflow/internal/adapter/http/handlers/mocks"
	"dealflow/internal/adapter/http/middleware"
	"dealflow/internal/config"
	"dealflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testSecret = "routes-secret"

func newTestEngine(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	estimates := mocks.NewMockIEstimateUseCase(ctrl)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release", AllowedOrigins: []string{"*"}},
		JWT:    config.JWTConfig{Secret: testSecret, Issuer: "dealflow"},
	}
	router := NewRouter(cfg, zap.NewNop(), Handlers{
		Estimate:         handlers.NewEstimateHandler(estimates),
		Deal:             handlers.NewDealHandler(mocks.NewMockIDealUseCase(ctrl)),
		Project:          handlers.NewProjectHandler(mocks.NewMockIMilestoneUseCase(ctrl)),
		MilestonePayment: handlers.NewMilestonePaymentHandler(mocks.NewMockIMilestonePaymentUseCase(ctrl)),
		Upload:           handlers.NewUploadHandler(mocks.NewMockIUploadUseCase(ctrl)),
	})
	return router, estimates
}

func bearer(t *testing.T, uid string, role entities.Role) string {
	t.Helper()
	token, err := middleware.SignToken(testSecret, middleware.Claims{
		UserID: uid,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "dealflow",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestNewRouter(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		router, _ := newTestEngine(t)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("protected routes need a token", func(t *testing.T) {
		router, _ := newTestEngine(t)
		paths := []struct{ method, path string }{
			{http.MethodGet, "/v1/estimates/est-1"},
			{http.MethodPost, "/v1/estimates/est-1/deal"},
			{http.MethodGet, "/v1/projects/prj-1"},
			{http.MethodPatch, "/v1/projects/prj-1/milestones/ms-1/release"},
			{http.MethodPost, "/v1/uploads/presign"},
		}
		for _, p := range paths {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
		}
	})

	t.Run("role gate runs before the handler", func(t *testing.T) {
		router, _ := newTestEngine(t)
		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/assign", nil)
		req.Header.Set("Authorization", bearer(t, "cus-1", entities.RoleCustomer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("actor reaches the use case", func(t *testing.T) {
		router, estimates := newTestEngine(t)
		actor := entities.Actor{ID: "cus-1", Role: entities.RoleCustomer}
		estimates.EXPECT().GetByID(gomock.Any(), actor, "est-1").Return(entities.Estimate{ID: "est-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		req.Header.Set("Authorization", bearer(t, "cus-1", entities.RoleCustomer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
