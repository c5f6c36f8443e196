package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// LineItemController gerencia o lançamento de pedidos
type LineItemController struct {
	lineItemService *service.LineItemService
	logger          logger.Logger
}

// NewLineItemController cria uma nova instância de LineItemController
func NewLineItemController(lineItemService *service.LineItemService, logger logger.Logger) *LineItemController {
	return &LineItemController{
		lineItemService: lineItemService,
		logger:          logger,
	}
}

// AddToTab lança um pedido na comanda
// @Summary Lançar pedido na comanda
// @Description Captura o preço atual do produto e baixa o estoque na mesma transação
// @Tags line-items
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da comanda"
// @Param item body dto.AddItemRequest true "Pedido"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tabs/{id}/items [post]
func (c *LineItemController) AddToTab(ctx *gin.Context) {
	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	c.add(ctx, service.AddLineItemInput{
		TabID:     ctx.Param("id"),
		SubTabID:  req.SubTabID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}

// Create lança um pedido informando a comanda ou a subcomanda
// @Summary Lançar pedido
// @Description Quando a subcomanda é informada, o pedido vai para a comanda dona dela
// @Tags line-items
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.CreateLineItemRequest true "Pedido"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /line-items [post]
func (c *LineItemController) Create(ctx *gin.Context) {
	var req dto.CreateLineItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	c.add(ctx, service.AddLineItemInput{
		TabID:     req.TabID,
		SubTabID:  req.SubTabID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}

func (c *LineItemController) add(ctx *gin.Context, in service.AddLineItemInput) {
	item, err := c.lineItemService.Add(ctx.Request.Context(), in)
	if err != nil {
		respondError(ctx, c.logger, "erro ao lançar pedido", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLineItemResponse(item))
}
