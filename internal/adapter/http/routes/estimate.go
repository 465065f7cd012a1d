package routes

import (
	"hospital_estimate/internal/adapter/http/handlers"
	"hospital_estimate/internal/adapter/http/middleware"
	"hospital_estimate/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addEstimateRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	catalogHandler *handlers.CatalogHandler,
	discountHandler *handlers.DiscountHandler,
) {
	auth := middleware.AuthRequired()
	manage := middleware.RequireRoles(entities.RoleAdmin, entities.RoleManager)

	rg.POST("/generate-estimate", auth, estimateHandler.GenerateEstimate)
	rg.POST("/save-estimate", auth, estimateHandler.SaveEstimate)
	rg.GET("/saved-estimates", auth, estimateHandler.ListSavedEstimates)
	rg.GET("/saved-estimates/:id", auth, estimateHandler.GetSavedEstimate)

	rg.GET("/services", auth, catalogHandler.ListServices)
	rg.POST("/services", auth, manage, catalogHandler.CreateService)
	rg.PUT("/services/:id", auth, manage, catalogHandler.UpdateService)
	rg.DELETE("/services/:id", auth, manage, catalogHandler.DeleteService)

	rg.GET("/service-categories", auth, catalogHandler.ListServiceCategories)
	rg.GET("/patient-categories", auth, catalogHandler.ListPatientCategories)

	rg.GET("/discounts", auth, discountHandler.ListDiscounts)
	rg.POST("/discounts", auth, manage, discountHandler.UpsertDiscount)
	rg.PUT("/discounts/:id", auth, manage, discountHandler.UpdateDiscount)
	rg.DELETE("/discounts/:id", auth, manage, discountHandler.DeleteDiscount)
}
