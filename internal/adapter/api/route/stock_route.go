package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// RegisterStockRoutes registra as consultas de estoque
func RegisterStockRoutes(r *gin.RouterGroup, stockController *controller.StockController) {
	stock := r.Group("/stock")
	stock.Use(middleware.AuthMiddleware())
	{
		stock.POST("/check", stockController.Check)
		stock.GET("/critical", stockController.Critical)
	}
}
