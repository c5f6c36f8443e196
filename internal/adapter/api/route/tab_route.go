package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// RegisterTabRoutes registra as rotas do módulo de comandas
func RegisterTabRoutes(r *gin.RouterGroup, tabController *controller.TabController,
	lineItemController *controller.LineItemController, paymentController *controller.PaymentController) {
	tabs := r.Group("/tabs")
	tabs.Use(middleware.AuthMiddleware())
	{
		tabs.POST("", tabController.Create)
		tabs.GET("", tabController.List)
		tabs.GET("/:id", tabController.Get)
		tabs.PUT("/:id/status", tabController.UpdateStatus)
		tabs.POST("/:id/items", lineItemController.AddToTab)
		tabs.GET("/:id/payments", paymentController.ListByTab)
		tabs.POST("/:id/sub-tabs", tabController.Split)
		tabs.GET("/:id/sub-tabs/:subId", tabController.GetSubTab)
	}
}
