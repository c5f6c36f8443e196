package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// StockController expõe consultas ao estoque
type StockController struct {
	stockService *service.StockService
	logger       logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(stockService *service.StockService, logger logger.Logger) *StockController {
	return &StockController{
		stockService: stockService,
		logger:       logger,
	}
}

// Check verifica se há estoque para um conjunto de itens, sem baixar
// @Summary Verificar estoque
// @Tags stock
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param items body dto.StockCheckRequest true "Itens"
// @Success 200 {object} dto.StockCheckResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /stock/check [post]
func (c *StockController) Check(ctx *gin.Context) {
	var req dto.StockCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	result, err := c.stockService.Check(ctx.Request.Context(), req.ToItemRequests())
	if err != nil {
		respondError(ctx, c.logger, "erro ao verificar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StockCheckResponse{Success: result.Success, Message: result.Message})
}

// Critical lista os produtos com estoque baixo ou zerado
// @Summary Estoque crítico
// @Tags stock
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.CriticalStockResponse
// @Router /stock/critical [get]
func (c *StockController) Critical(ctx *gin.Context) {
	items, err := c.stockService.Critical(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar estoque crítico", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCriticalStockResponses(items))
}
