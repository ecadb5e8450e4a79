package routes

import (
	_ "dealflow/docs"
	"dealflow/internal/adapter/http/handlers"
	"dealflow/internal/adapter/http/middleware"
	"dealflow/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Estimate         *handlers.EstimateHandler
	Deal             *handlers.DealHandler
	Project          *handlers.ProjectHandler
	MilestonePayment *handlers.MilestonePaymentHandler
	Upload           *handlers.UploadHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the v1 API.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, cfg, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, auth, h.Estimate, h.Deal)
	addProjectRoutes(v1, auth, h.Project, h.MilestonePayment)
	addUploadRoutes(v1, auth, h.Upload)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	if len(corsCfg.AllowOrigins) == 0 || (len(corsCfg.AllowOrigins) == 1 && corsCfg.AllowOrigins[0] == "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AddAllowHeaders("Authorization", middleware.HeaderRequestID)
	corsCfg.AddExposeHeaders(middleware.HeaderRequestID)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(corsCfg))
}
