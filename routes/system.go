package routes

import (
	"net/http"

	"englishcoach/metrics"

	"github.com/gin-gonic/gin"
)

// SetupSystemRoutes registers health and Prometheus endpoints
func SetupSystemRoutes(router gin.IRouter) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
