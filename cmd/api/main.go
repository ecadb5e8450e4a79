package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dealflow/internal/adapter/http/handlers"
	"dealflow/internal/adapter/http/routes"
	"dealflow/internal/adapter/persistence/repository"
	"dealflow/internal/config"
	"dealflow/internal/infrastructure/cache"
	"dealflow/internal/infrastructure/database"
	"dealflow/internal/infrastructure/logger"
	"dealflow/internal/infrastructure/messaging"
	"dealflow/internal/infrastructure/payments"
	"dealflow/internal/infrastructure/storage"
	"dealflow/internal/usecase"
	"dealflow/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Dealflow API
// @version         1.0
// @description     Estimate negotiation and milestone lifecycle engine backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()
	h, closeFn, err := buildHandlers(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to wire dependencies", zap.Error(err))
	}
	defer closeFn()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: routes.NewRouter(cfg, zapLogger, h),
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
}

// buildHandlers wires repositories, infrastructure adapters and use cases.
// Optional adapters (NATS, Redis, S3, Mercado Pago) are skipped when their
// settings are missing.
func buildHandlers(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (routes.Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return routes.Handlers{}, nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.Tables.Estimates, cfg.Tables.Quotations, cfg.Tables.Projects)
	quotationRepo := repository.NewQuotationDynamoRepository(ddb, cfg.Tables.Quotations)
	projectRepo := repository.NewProjectDynamoRepository(ddb, cfg.Tables.Projects)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers)
	freelancerRepo := repository.NewFreelancerDynamoRepository(ddb, cfg.Tables.Freelancers)
	paymentRepo := repository.NewMilestonePaymentDynamoRepository(ddb, cfg.Tables.MilestonePayments)

	var catalog interfaces.ICatalogRepository = repository.NewCatalogDynamoRepository(ddb, cfg.Tables.ServiceTypes)
	closers := []func(){}
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		closers = append(closers, func() { _ = rdb.Close() })
		catalog = cache.NewCatalogCache(catalog, rdb, cfg.Redis.CacheTTL, zapLogger)
		zapLogger.Info("Catalog cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var notifier interfaces.INotifier = messaging.NopNotifier{}
	if cfg.NATS.URL != "" {
		nc, err := messaging.Connect(cfg.NATS.URL, zapLogger)
		if err != nil {
			return routes.Handlers{}, nil, fmt.Errorf("connect nats: %w", err)
		}
		closers = append(closers, func() { _ = nc.Drain() })
		notifier = messaging.NewNATSNotifier(nc, cfg.NATS.SubjectPrefix, zapLogger)
	} else {
		zapLogger.Warn("NATS_URL not set, notifications are disabled")
	}

	var objectStorage interfaces.IObjectStorage
	if cfg.Storage.Bucket != "" {
		awsCfg, err := database.LoadAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return routes.Handlers{}, nil, fmt.Errorf("load aws config: %w", err)
		}
		presigner, err := storage.NewS3Presigner(awsCfg, cfg.Storage.Bucket, cfg.AWS.S3Endpoint, zapLogger)
		if err != nil {
			return routes.Handlers{}, nil, fmt.Errorf("init s3 presigner: %w", err)
		}
		objectStorage = presigner
	} else {
		zapLogger.Warn("S3_BUCKET not set, uploads are disabled")
	}

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, zapLogger)
		if err != nil {
			zapLogger.Warn("Mercado Pago gateway not configured", zap.Error(err))
		} else {
			paymentGateway = mpGateway
		}
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, quotationRepo, customerRepo, freelancerRepo, catalog, notifier, zapLogger)
	dealUseCase := usecase.NewDealUseCase(estimateRepo, quotationRepo, notifier, zapLogger)
	milestoneUseCase := usecase.NewMilestoneUseCase(projectRepo, freelancerRepo, notifier, zapLogger)
	paymentUseCase := usecase.NewMilestonePaymentUseCase(paymentRepo, projectRepo, paymentGateway, usecase.PaymentOptions{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, notifier, zapLogger)
	uploadUseCase := usecase.NewUploadUseCase(objectStorage, cfg.Storage.PresignExpiry, zapLogger)

	closeFn := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	return routes.Handlers{
		Estimate:         handlers.NewEstimateHandler(estimateUseCase),
		Deal:             handlers.NewDealHandler(dealUseCase),
		Project:          handlers.NewProjectHandler(milestoneUseCase),
		MilestonePayment: handlers.NewMilestonePaymentHandler(paymentUseCase),
		Upload:           handlers.NewUploadHandler(uploadUseCase),
	}, closeFn, nil
}
