package routes

import (
	"context"
	"os"
	"strconv"

	_ "hospital_estimate/docs" // This will be auto-generated
	"hospital_estimate/internal/adapter/http/handlers"
	repository2 "hospital_estimate/internal/adapter/persistence/repository"
	"hospital_estimate/internal/infrastructure/database"
	"hospital_estimate/internal/infrastructure/observability"
	"hospital_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	observability.InitLogger("hospital-estimate", getenvDefault("APP_ENV", "development"))

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	serviceCategoryRepo := repository2.NewServiceCategoryDynamoRepository(ddb)
	patientCategoryRepo := repository2.NewPatientCategoryDynamoRepository(ddb)
	discountRepo := repository2.NewDiscountDynamoRepository(ddb)
	savedEstimateRepo := repository2.NewSavedEstimateDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	if err := database.SeedCategories(context.Background(), serviceCategoryRepo, patientCategoryRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default categories")
	}

	estimateUseCase := usecase.NewEstimateUseCase(serviceRepo, serviceCategoryRepo, patientCategoryRepo, discountRepo, savedEstimateRepo)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, serviceCategoryRepo, patientCategoryRepo)
	discountUseCase := usecase.NewDiscountUseCase(discountRepo, serviceCategoryRepo, patientCategoryRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	discountHandler := handlers.NewDiscountHandler(discountUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addUserRoutes(api, userHandler)
	addEstimateRoutes(api, estimateHandler, catalogHandler, discountHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
