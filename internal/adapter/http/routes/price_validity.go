package routes

import (
	"net/http"

	"price-validity-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPriceValidity = "/price-validity"
)

func addPriceValidityRoutes(rg *gin.RouterGroup, lifecycleHandler *handlers.LifecycleHandler, metricsHandler *handlers.MetricsHandler) {
	validity := rg.Group(PathPriceValidity)
	{
		validity.GET("/status-data", metricsHandler.GetStatusData)
		validity.GET("/metrics", metricsHandler.GetMetrics)
		validity.GET("/dashboard", metricsHandler.GetDashboard)
		validity.GET("/history/:priceItemId", metricsHandler.GetHistory)
		validity.GET("/lifecycle-states", metricsHandler.GetLifecycleStates)

		validity.POST("/records", lifecycleHandler.RegisterRecord)
		validity.POST("/update-status", lifecycleHandler.UpdateStatus)
		validity.POST("/bulk-update", lifecycleHandler.BulkUpdate)
		validity.PUT("/process-automatic-transitions", lifecycleHandler.ProcessAutomaticTransitions)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
