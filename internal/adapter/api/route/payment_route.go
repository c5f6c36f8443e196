package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// RegisterPaymentRoutes registra as rotas de pagamento
func RegisterPaymentRoutes(r *gin.RouterGroup, paymentController *controller.PaymentController) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", paymentController.Record)
	}
}
