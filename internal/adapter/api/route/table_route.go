package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// RegisterTableRoutes registra as rotas de mesas
func RegisterTableRoutes(r *gin.RouterGroup, tableController *controller.TableController) {
	tables := r.Group("/tables")
	tables.Use(middleware.AuthMiddleware())
	{
		tables.GET("", tableController.List)
		tables.GET("/:id", tableController.Get)
		tables.POST("/:id/tabs", tableController.OpenTab)
	}
}
