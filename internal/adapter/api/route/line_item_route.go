package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// RegisterLineItemRoutes registra o lançamento direto de pedidos
func RegisterLineItemRoutes(r *gin.RouterGroup, lineItemController *controller.LineItemController) {
	items := r.Group("/line-items")
	items.Use(middleware.AuthMiddleware())
	{
		items.POST("", lineItemController.Create)
	}
}
