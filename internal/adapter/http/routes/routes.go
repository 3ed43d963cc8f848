package routes

import (
	"context"
	"fmt"

	_ "purchase_sale/docs"
	"purchase_sale/internal/adapter/http/handlers"
	"purchase_sale/internal/adapter/http/middleware"
	"purchase_sale/internal/adapter/persistence/repository"
	"purchase_sale/internal/infrastructure/config"
	"purchase_sale/internal/infrastructure/database"
	"purchase_sale/internal/infrastructure/lock"
	"purchase_sale/internal/infrastructure/logging"
	"purchase_sale/internal/infrastructure/registry"
	"purchase_sale/internal/usecase"
	"purchase_sale/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router *gin.Engine

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	gin.SetMode(cfg.Server.GinMode)
	router = gin.New()
	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	log.Infof("[server] listening port=%d backend=%s", cfg.Server.Port, cfg.Storage.Backend)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) error {
	repo, err := newContractRepository(ctx, cfg)
	if err != nil {
		return err
	}

	registryOpts := func(baseURL string) registry.Options {
		return registry.Options{
			BaseURL:            baseURL,
			InternalServiceKey: cfg.Auth.InternalServiceKey,
			Timeout:            cfg.Registry.Timeout,
		}
	}
	clients := registry.NewClientRegistry(registryOpts(cfg.Registry.ClientServiceURL))
	users := registry.NewUserRegistry(registryOpts(cfg.Registry.UserServiceURL))
	vehicles := registry.NewVehicleRegistry(registryOpts(cfg.Registry.VehicleServiceURL))

	resolver := usecase.NewReferenceResolver(clients, users, vehicles)
	provisioner := usecase.NewVehicleProvisioner(vehicles)

	contractUseCase := usecase.NewContractUseCase(repo, resolver, provisioner)
	detailUseCase := usecase.NewContractDetailUseCase(resolver)
	reportUseCase := usecase.NewContractReportUseCase(repo, detailUseCase, nil)

	contractHandler := handlers.NewContractHandler(contractUseCase, detailUseCase, reportUseCase, cfg.PageSize)
	auth := middleware.NewAuthMiddleware(cfg.Auth.InternalServiceKey, cfg.Auth.JWTSecret)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas protegidas
	addContractRoutes(v1, contractHandler, auth)
	return nil
}

// newContractRepository picks the contract store for the configured backend.
func newContractRepository(ctx context.Context, cfg *config.Config) (interfaces.IContractRepository, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := database.ConnectPostgres(cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := repository.MigrateContracts(db); err != nil {
			return nil, fmt.Errorf("migrate contracts: %w", err)
		}
		return repository.NewContractGormRepository(db), nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		locker, err := newVehicleLocker(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewContractDynamoRepository(ddb, cfg.DynamoDB.ContractsTable, cfg.DynamoDB.CountersTable, locker), nil

	default:
		locker, err := newVehicleLocker(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewContractMemoryRepository(locker), nil
	}
}

// newVehicleLocker uses Redis when an address is configured so that several
// instances share the per-vehicle scope.
func newVehicleLocker(ctx context.Context, cfg *config.Config) (interfaces.IVehicleLocker, error) {
	if cfg.Redis.Addr == "" {
		log.Warn("[lock] REDIS_ADDR not set, vehicle scope is local to this instance")
		return lock.NewLocalVehicleLocker(), nil
	}
	client, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	return lock.NewRedisVehicleLocker(client, cfg.Redis.LockTTL, cfg.Redis.LockTTL), nil
}

func setMiddlewares(cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", registry.InternalServiceKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
	}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
