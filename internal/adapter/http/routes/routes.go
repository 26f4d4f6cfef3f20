package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "price-validity-service/docs" // This will be auto-generated
	"price-validity-service/internal/adapter/http/handlers"
	"price-validity-service/internal/adapter/persistence/catalog"
	repository2 "price-validity-service/internal/adapter/persistence/repository"
	"price-validity-service/internal/clients"
	"price-validity-service/internal/infrastructure/cache"
	"price-validity-service/internal/infrastructure/database"
	"price-validity-service/internal/jobs"
	"price-validity-service/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger := newLogger()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(logger *logrus.Logger) {
	statusCatalog, err := catalog.Load(logger)
	if err != nil {
		log.Fatalf("Failed to load status catalog: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		table := getenvDefault("PRICE_STATUS_TABLE", "price_status")
		if err := database.EnsurePriceStatusTable(context.Background(), ddb, table); err != nil {
			logger.WithError(err).Warnf("could not ensure table %s", table)
		}
	}

	redisClient := cache.ConnectRedis(logger)

	statusRepo := repository2.NewPriceStatusDynamoRepository(ddb)

	reportingClient := clients.NewReportingClient()
	lifecycleConfigClient := clients.NewLifecycleConfigClient()

	lifecycleUseCase := usecase.NewLifecycleUseCase(statusCatalog, statusRepo, nil, logger)
	metricsUseCase := usecase.NewMetricsUseCase(statusCatalog, statusRepo, nil, redisClient, logger)

	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleUseCase, lifecycleConfigClient, logger)
	metricsHandler := handlers.NewMetricsHandler(metricsUseCase, statusCatalog, reportingClient, lifecycleConfigClient, logger)

	sweepJob := jobs.NewStatusSweepJob(lifecycleUseCase, logger)
	go sweepJob.Start(context.Background())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPriceValidityRoutes(v1, lifecycleHandler, metricsHandler)
}

func setMiddlewares(logger *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(getenvDefault("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
