package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// PaymentController gerencia as requisições de pagamento
type PaymentController struct {
	paymentService *service.PaymentService
	logger         logger.Logger
}

// NewPaymentController cria uma nova instância de PaymentController
func NewPaymentController(paymentService *service.PaymentService, logger logger.Logger) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Record registra um pagamento
// @Summary Registrar pagamento
// @Description Registra o pagamento e recalcula subcomanda, comanda e mesa na mesma transação
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payment body dto.PaymentRequest true "Pagamento"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /payments [post]
func (c *PaymentController) Record(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	result, err := c.paymentService.Record(ctx.Request.Context(), service.RecordPaymentInput{
		TabID:    req.TabID,
		SubTabID: req.SubTabID,
		Amount:   req.Amount,
		Method:   req.Method,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao registrar pagamento", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordPaymentResponse(result))
}

// ListByTab lista os pagamentos de uma comanda
// @Summary Listar pagamentos da comanda
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da comanda"
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tabs/{id}/payments [get]
func (c *PaymentController) ListByTab(ctx *gin.Context) {
	payments, err := c.paymentService.ListByTab(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar pagamentos", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}
